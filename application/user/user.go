package user

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	redisrepo "github.com/cafelumiere/cafe-api/repository/redis"
	userrepo "github.com/cafelumiere/cafe-api/repository/user"
	"github.com/cafelumiere/cafe-api/thirdparty/rabbitmq"
	"github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/cafelumiere/cafe-api/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const promoCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)

	GetUser(ctx context.Context, id uint64) (*model.UserEntity, error)
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
	UpdateUser(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	BlockUser(ctx context.Context, id uint64) (*model.UserEntity, error)
	UnblockUser(ctx context.Context, id uint64) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, id uint64) error

	GeneratePromo(ctx context.Context, userID uint64) (*model.GeneratePromoResponse, error)
	ValidatePromo(ctx context.Context, req *model.ValidatePromoRequest) (*model.ValidatePromoResponse, error)

	ForgotPassword(ctx context.Context, email string) error
	VerifyResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type userAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

type authClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) UserApp {
	return &userAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

func (s *userAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.UserEntity, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Fullname:     req.Fullname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
		Status:       constant.UserStatusActive,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return userEntity, nil
}

func (s *userAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if user.Status == constant.UserStatusBlocked {
		return nil, errors.SetCustomError(constant.ErrAccountBlocked)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID, user.Role)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// ValidateToken checks the JWT signature and that its jti still maps to a
// live redis session; returns the user id and role claim.
func (s *userAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}
	// zero means no session store is wired; the signature check stands alone
	if redisUserID != 0 && redisUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	return userID, claims.Role, nil
}

func (s *userAppImpl) GetUser(ctx context.Context, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *userAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return users, nil
}

func (s *userAppImpl) UpdateUser(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	ok, err := s.userRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.GetUser(ctx, id)
}

func (s *userAppImpl) UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	ok, err := s.userRepo.UpdateProfile(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.GetUser(ctx, id)
}

func (s *userAppImpl) BlockUser(ctx context.Context, id uint64) (*model.UserEntity, error) {
	return s.setStatus(ctx, id, constant.UserStatusBlocked)
}

func (s *userAppImpl) UnblockUser(ctx context.Context, id uint64) (*model.UserEntity, error) {
	return s.setStatus(ctx, id, constant.UserStatusActive)
}

func (s *userAppImpl) setStatus(ctx context.Context, id uint64, status constant.UserStatus) (*model.UserEntity, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == constant.UserStatusBlocked && user.Role == constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrCannotModifyAdmin)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("[setStatus] err userRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	user.Status = status
	return user, nil
}

func (s *userAppImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == constant.RoleAdmin {
		return errors.SetCustomError(constant.ErrCannotModifyAdmin)
	}

	if _, err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// GeneratePromo claims a fresh CAFE-XXXXXX code. A new claim is refused
// while the previous code is still inside its validity window.
func (s *userAppImpl) GeneratePromo(ctx context.Context, userID uint64) (*model.GeneratePromoResponse, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.PromoLastClaimed != nil && time.Since(*user.PromoLastClaimed) < s.config.Checkout.PromoValidityWindow {
		existing := ""
		if user.PromoCode != nil {
			existing = *user.PromoCode
		}
		return nil, errors.SetCustomErrorWithMessage(constant.ErrPromoStillActive,
			fmt.Sprintf("you already have an active promo code (%s), please wait 7 days before claiming a new one", existing))
	}

	code, err := generatePromoCode()
	if err != nil {
		logger.Error("[GeneratePromo] err generatePromoCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.SetPromoCode(ctx, userID, code, time.Now()); err != nil {
		logger.Error("[GeneratePromo] err userRepo.SetPromoCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.GeneratePromoResponse{PromoCode: code}, nil
}

// ValidatePromo is the explicit-check endpoint: unlike checkout, mismatched
// or expired codes come back as errors here.
func (s *userAppImpl) ValidatePromo(ctx context.Context, req *model.ValidatePromoRequest) (*model.ValidatePromoResponse, error) {
	user, err := s.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if user.PromoCode == nil || *user.PromoCode != req.PromoCode {
		return nil, errors.SetCustomError(constant.ErrPromoIneligible)
	}
	if user.PromoLastClaimed == nil || time.Since(*user.PromoLastClaimed) >= s.config.Checkout.PromoValidityWindow {
		return nil, errors.SetCustomError(constant.ErrPromoExpired)
	}

	return &model.ValidatePromoResponse{Discount: s.config.Checkout.PromoDiscountRate}, nil
}

// ForgotPassword never reveals whether the email exists. The raw token is
// only carried on the reset event; storage keeps its sha256 digest with a
// TTL.
func (s *userAppImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Error("[ForgotPassword] err rand.Read", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	token := hex.EncodeToString(raw)

	if err := s.redisRepo.SetResetToken(ctx, hashToken(token), user.ID, s.config.Auth.ResetTokenTTL); err != nil {
		logger.Error("[ForgotPassword] err SetResetToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.PasswordResetMessage{
			Email:      user.Email,
			Fullname:   user.Fullname,
			ResetToken: token,
		}
		if err := s.publisher.PublishPasswordReset(msg); err != nil {
			logger.Error("[ForgotPassword] err PublishPasswordReset", zap.String("error", err.Error()))
		}
	}

	return nil
}

func (s *userAppImpl) VerifyResetToken(ctx context.Context, token string) error {
	userID, err := s.redisRepo.GetResetToken(ctx, hashToken(token))
	if err != nil || userID == 0 {
		return errors.SetCustomError(constant.ErrResetTokenInvalid)
	}
	return nil
}

func (s *userAppImpl) ResetPassword(ctx context.Context, token, password string) error {
	tokenHash := hashToken(token)
	userID, err := s.redisRepo.GetResetToken(ctx, tokenHash)
	if err != nil || userID == 0 {
		return errors.SetCustomError(constant.ErrResetTokenInvalid)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Error("[ResetPassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.DeleteResetToken(ctx, tokenHash); err != nil {
		logger.Warn("[ResetPassword] err DeleteResetToken", zap.String("error", err.Error()))
	}

	return nil
}

// generateJWT creates a JWT token carrying the user id and role
func (s *userAppImpl) generateJWT(userID uint64, role string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func generatePromoCode() (string, error) {
	code := make([]byte, 6)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(promoCodeCharset))))
		if err != nil {
			return "", err
		}
		code[i] = promoCodeCharset[n.Int64()]
	}
	return "CAFE-" + string(code), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
