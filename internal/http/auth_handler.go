package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bookshop/internal/auth"
	"bookshop/internal/httpx"
)

const tokenTTL = 24 * time.Hour

// AuthHandler implements the demo login flow. There is no user table:
// any well-formed credentials are accepted as a regular shopper, and
// one configured admin account (verified against a bcrypt hash) gets
// the ADMIN role that guards catalog writes.
type AuthHandler struct {
	secret            string
	adminEmail        string
	adminPasswordHash string
}

func NewAuthHandler(secret, adminEmail, adminPassword string) (*AuthHandler, error) {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{
		secret:            secret,
		adminEmail:        adminEmail,
		adminPasswordHash: hash,
	}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// @Summary Log in
// @Description Demo login: the configured admin account gets ADMIN, anyone else USER
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(in); errs != nil {
		details := make([]httpx.ErrorDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "Please fill in all fields", details)
		return
	}

	role := "USER"
	if in.Email == h.adminEmail {
		if !auth.VerifyPassword(h.adminPasswordHash, in.Password) {
			httpx.JSONError(r, w, http.StatusUnauthorized, "unauthorized", "Invalid credentials", nil)
			return
		}
		role = "ADMIN"
	}

	h.issueSession(w, r, in.Email, role)
}

// @Summary Register
// @Description Demo registration: accepts any well-formed input and signs the user in
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(in); errs != nil {
		details := make([]httpx.ErrorDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "Please fill in all fields", details)
		return
	}

	h.issueSession(w, r, in.Email, "USER")
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, email, role string) {
	token, _, err := auth.GenerateToken(h.secret, email, role, tokenTTL)
	if err != nil {
		log.Printf("auth: token generation failed: error=%v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "internal_error", "Could not create a session", nil)
		return
	}
	httpx.JSONSuccess(r, w, sessionResponse{Token: token, Email: email, Role: role})
}
