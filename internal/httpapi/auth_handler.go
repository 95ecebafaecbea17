package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/service"
)

type AuthHandler struct {
	service service.Auth
	logger  *zap.Logger
}

func NewAuthHandler(svc service.Auth, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: svc, logger: logger}
}

type signupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusCreated, "User registered successfully", result)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Signin(r.Context(), service.SigninInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeMessageData(w, http.StatusOK, "Signed in successfully", result)
}

// Me returns the profile behind the bearer token; it sits behind
// AuthRequired, which stores verified claims on the context.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}

	user, err := h.service.Me(r.Context(), claims.UserID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	writeData(w, http.StatusOK, user)
}
