package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appuser "github.com/cafelumiere/cafe-api/application/user"
	"github.com/cafelumiere/cafe-api/cmd/config"
	"github.com/cafelumiere/cafe-api/constant"
	redismocks "github.com/cafelumiere/cafe-api/mocks/repository/redis"
	usermocks "github.com/cafelumiere/cafe-api/mocks/repository/user"
	"github.com/cafelumiere/cafe-api/model"
	cerr "github.com/cafelumiere/cafe-api/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func userConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
			ResetTokenTTL:  15 * time.Minute,
		},
		Checkout: config.CheckoutConfig{
			PromoValidityWindow: 7 * 24 * time.Hour,
			PromoDiscountRate:   0.5,
		},
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hashed)
}

func TestUserApp_Signup(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.SignupRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.SignupRequest{Fullname: "Jean Valjean", Email: "jean@example.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Email == "jean@example.com" &&
						u.Role == constant.RoleUser &&
						u.Status == constant.UserStatusActive &&
						u.PasswordHash != "" && u.PasswordHash != "secret1"
				})).Return(&model.UserEntity{ID: 1, Email: "jean@example.com"}, nil).Once()
			},
		},
		{
			name: "error: email already registered",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.SignupRequest{Fullname: "Jean Valjean", Email: "jean@example.com", Password: "secret1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{ID: 1}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(userConfig(), tt.fields.userRepo, tt.fields.redisRepo, nil)

			_, err := app.Signup(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.LoginRequest
		mockCall func(t *testing.T, f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "jean@example.com", Password: "secret1"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
					ID:           1,
					Email:        "jean@example.com",
					Role:         constant.RoleUser,
					Status:       constant.UserStatusActive,
					PasswordHash: mustHash(t, "secret1"),
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: unknown email",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "nobody@example.com", Password: "secret1"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: blocked account",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "jean@example.com", Password: "secret1"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
					ID:           1,
					Status:       constant.UserStatusBlocked,
					PasswordHash: mustHash(t, "secret1"),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountBlocked,
		},
		{
			name: "error: wrong password",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "jean@example.com", Password: "wrong"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
					ID:           1,
					Status:       constant.UserStatusActive,
					PasswordHash: mustHash(t, "secret1"),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(t, tt.fields)
			}
			app := appuser.NewUserApp(userConfig(), tt.fields.userRepo, tt.fields.redisRepo, nil)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Fatal("Login() returned empty token")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	t.Run("round-trips a freshly issued token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
			ID:           1,
			Role:         constant.RoleUser,
			Status:       constant.UserStatusActive,
			PasswordHash: mustHash(t, "secret1"),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(1), nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		login, err := app.Login(context.Background(), &model.LoginRequest{Email: "jean@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		userID, role, err := app.ValidateToken(context.Background(), login.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 || role != constant.RoleUser {
			t.Fatalf("ValidateToken() = (%d, %s), want (1, %s)", userID, role, constant.RoleUser)
		}
	})

	t.Run("rejects a session owned by another user", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
			ID:           1,
			Role:         constant.RoleUser,
			Status:       constant.UserStatusActive,
			PasswordHash: mustHash(t, "secret1"),
		}, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(2), nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		login, err := app.Login(context.Background(), &model.LoginRequest{Email: "jean@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if _, _, err := app.ValidateToken(context.Background(), login.Token); err == nil {
			t.Fatal("ValidateToken() accepted a mismatched session")
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		app := appuser.NewUserApp(userConfig(), usermocks.NewUserRepository(t), redismocks.NewRepository(t), nil)
		if _, _, err := app.ValidateToken(context.Background(), "not.a.token"); err == nil {
			t.Fatal("ValidateToken() accepted garbage")
		}
	})
}

func TestUserApp_GeneratePromo(t *testing.T) {
	t.Run("claims a fresh code", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{ID: 1}, nil).Once()
		userRepo.On("SetPromoCode", mock.Anything, uint64(1), mock.MatchedBy(func(code string) bool {
			return strings.HasPrefix(code, "CAFE-") && len(code) == len("CAFE-")+6
		}), mock.AnythingOfType("time.Time")).Return(nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		got, err := app.GeneratePromo(context.Background(), 1)
		if err != nil {
			t.Fatalf("GeneratePromo() error = %v", err)
		}
		if !strings.HasPrefix(got.PromoCode, "CAFE-") {
			t.Fatalf("GeneratePromo() code = %s, want CAFE- prefix", got.PromoCode)
		}
	})

	t.Run("refuses while previous code is active", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		code := "CAFE-ABC123"
		claimed := time.Now().Add(-24 * time.Hour)
		userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
			ID: 1, PromoCode: &code, PromoLastClaimed: &claimed,
		}, nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		_, err := app.GeneratePromo(context.Background(), 1)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrPromoStillActive] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrPromoStillActive])
		}
	})

	t.Run("allows a new claim after the window", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		code := "CAFE-ABC123"
		claimed := time.Now().Add(-8 * 24 * time.Hour)
		userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
			ID: 1, PromoCode: &code, PromoLastClaimed: &claimed,
		}, nil).Once()
		userRepo.On("SetPromoCode", mock.Anything, uint64(1), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		if _, err := app.GeneratePromo(context.Background(), 1); err != nil {
			t.Fatalf("GeneratePromo() error = %v", err)
		}
	})
}

func TestUserApp_ValidatePromo(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	code := "CAFE-ABC123"
	fresh := time.Now().Add(-24 * time.Hour)
	stale := time.Now().Add(-8 * 24 * time.Hour)

	tests := []struct {
		name         string
		fields       fields
		req          *model.ValidatePromoRequest
		mockCall     func(f fields)
		wantDiscount float64
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name: "success: matching code inside window",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.ValidatePromoRequest{UserID: 1, PromoCode: code},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
					ID: 1, PromoCode: &code, PromoLastClaimed: &fresh,
				}, nil).Once()
			},
			wantDiscount: 0.5,
		},
		{
			name: "error: code does not belong to user",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.ValidatePromoRequest{UserID: 1, PromoCode: "CAFE-OTHER1"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
					ID: 1, PromoCode: &code, PromoLastClaimed: &fresh,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPromoIneligible,
		},
		{
			name: "error: code expired",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.ValidatePromoRequest{UserID: 1, PromoCode: code},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
					ID: 1, PromoCode: &code, PromoLastClaimed: &stale,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPromoExpired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(userConfig(), tt.fields.userRepo, tt.fields.redisRepo, nil)

			got, err := app.ValidatePromo(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePromo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Discount != tt.wantDiscount {
				t.Fatalf("ValidatePromo() discount = %v, want %v", got.Discount, tt.wantDiscount)
			}
		})
	}
}

func TestUserApp_BlockUser(t *testing.T) {
	t.Run("blocks a regular user", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).Return(&model.UserEntity{
			ID: 2, Role: constant.RoleUser, Status: constant.UserStatusActive,
		}, nil).Once()
		userRepo.On("UpdateStatus", mock.Anything, uint64(2), constant.UserStatusBlocked).Return(nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		got, err := app.BlockUser(context.Background(), 2)
		if err != nil {
			t.Fatalf("BlockUser() error = %v", err)
		}
		if got.Status != constant.UserStatusBlocked {
			t.Fatalf("BlockUser() status = %s, want %s", got.Status, constant.UserStatusBlocked)
		}
	})

	t.Run("refuses to block an admin", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.UserEntity{
			ID: 1, Role: constant.RoleAdmin, Status: constant.UserStatusActive,
		}, nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		_, err := app.BlockUser(context.Background(), 1)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrCannotModifyAdmin] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrCannotModifyAdmin])
		}
	})
}

func TestUserApp_ResetPassword(t *testing.T) {
	t.Run("success: token maps to a user", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("GetResetToken", mock.Anything, mock.AnythingOfType("string")).Return(uint64(5), nil).Once()
		userRepo.On("UpdatePassword", mock.Anything, uint64(5), mock.AnythingOfType("string")).Return(nil).Once()
		redisRepo.On("DeleteResetToken", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		if err := app.ResetPassword(context.Background(), "sometoken", "newsecret"); err != nil {
			t.Fatalf("ResetPassword() error = %v", err)
		}
	})

	t.Run("error: unknown token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("GetResetToken", mock.Anything, mock.AnythingOfType("string")).Return(uint64(0), nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		err := app.ResetPassword(context.Background(), "badtoken", "newsecret")

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrResetTokenInvalid] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrResetTokenInvalid])
		}
	})
}

func TestUserApp_ForgotPassword(t *testing.T) {
	t.Run("unknown email is silently accepted", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		if err := app.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
			t.Fatalf("ForgotPassword() error = %v", err)
		}
	})

	t.Run("known email stores a hashed token", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)

		userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jean@example.com"}).Return(&model.UserEntity{
			ID: 1, Email: "jean@example.com", Fullname: "Jean Valjean",
		}, nil).Once()
		redisRepo.On("SetResetToken", mock.Anything, mock.AnythingOfType("string"), uint64(1), 15*time.Minute).Return(nil).Once()

		app := appuser.NewUserApp(userConfig(), userRepo, redisRepo, nil)
		if err := app.ForgotPassword(context.Background(), "jean@example.com"); err != nil {
			t.Fatalf("ForgotPassword() error = %v", err)
		}
	})
}
