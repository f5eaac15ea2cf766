package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"inkpress/internal/api/middleware"
	"inkpress/internal/app/service"
	"inkpress/internal/common"
	"inkpress/internal/common/security"
	"inkpress/internal/platform/tokenstore"
)

type AuthHandler struct {
	authService *service.AuthService
	tokenAuth   *security.TokenAuth
	tokens      tokenstore.Store
}

func NewAuthHandler(authService *service.AuthService, tokenAuth *security.TokenAuth, tokens tokenstore.Store) *AuthHandler {
	return &AuthHandler{authService: authService, tokenAuth: tokenAuth, tokens: tokens}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/logout", h.logout)
	r.Get("/history", h.history)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	req.UserAgent = r.UserAgent()

	user, err := h.authService.Verify(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	token, err := h.tokenAuth.GenerateToken(user.ID, user.Username)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// logout puts the token's jti on the denylist until the token would have
// expired anyway.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	ttl := time.Hour
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if exp, ok := claims["exp"].(time.Time); ok {
			if remaining := time.Until(exp); remaining > 0 {
				ttl = remaining
			}
		}
	}

	if err := h.tokens.Revoke(r.Context(), tokenID, ttl); err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) history(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	history, err := h.authService.LoginHistory(r.Context(), username)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, history)
}
