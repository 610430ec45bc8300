package transport

import (
	"encoding/json"
	"net/http"

	"github.com/cafelumiere/cafe-api/constant"
	"github.com/cafelumiere/cafe-api/model"
	utilsContext "github.com/cafelumiere/cafe-api/utils/context"
	"github.com/cafelumiere/cafe-api/utils/errors"
	validatorx "github.com/cafelumiere/cafe-api/utils/validator"
	"github.com/gorilla/mux"
)

type userPayload struct {
	User *model.UserEntity `json:"user"`
}

type usersPayload struct {
	Users []model.UserEntity `json:"users"`
}

// Signup handler
// @Summary Register user
// @Description Register a new customer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/users/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Signup(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ForgotPassword handler
// @Summary Request a password reset
// @Description Sends a reset link when the email is registered; responds identically either way
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/users/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.ForgotPassword(ctx, req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "if the email is registered, a reset link has been sent"})
}

// VerifyResetToken handler
// @Summary Verify a password-reset token
// @Tags Auth
// @Produce json
// @Param token path string true "Reset token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/users/reset-password/{token} [get]
func (s *RestHandler) VerifyResetToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := s.UserApp.VerifyResetToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "token is valid"})
}

// ResetPassword handler
// @Summary Reset the password with a valid token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/users/reset-password/{token} [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.ResetPassword(r.Context(), token, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "password has been reset"})
}

// GeneratePromo handler
// @Summary Claim a new promo code
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.GeneratePromoResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id}/generate-promo [post]
func (s *RestHandler) GeneratePromo(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GeneratePromo(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ValidatePromo handler
// @Summary Validate a promo code for a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.ValidatePromoRequest true "Validate Promo Request"
// @Success 200 {object} model.ValidatePromoResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/users/validate-promo [post]
func (s *RestHandler) ValidatePromo(w http.ResponseWriter, r *http.Request) {
	var req model.ValidatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.ValidatePromo(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProfile handler
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateProfileRequest true "Profile Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id}/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	// users may only edit their own profile, admins may edit anyone's
	callerID, _ := utilsContext.GetUserID(r.Context())
	callerRole, _ := utilsContext.GetUserRole(r.Context())
	if callerID != userID && callerRole != constant.RoleAdmin {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// ListUsers handler
// @Summary List all users (admin)
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserEntity
// @Failure 403 {object} errors.CustomError
// @Router /api/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, usersPayload{Users: res})
}

// GetUser handler
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// UpdateUser handler
// @Summary Update a user (admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Update User Request"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// BlockUser handler
// @Summary Block a user account (admin)
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id}/block [put]
func (s *RestHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.BlockUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// UnblockUser handler
// @Summary Unblock a user account (admin)
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id}/unblock [put]
func (s *RestHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UnblockUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, userPayload{User: res})
}

// DeleteUser handler
// @Summary Delete a user account (admin)
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "user deleted"})
}
