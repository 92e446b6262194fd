package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/santhosh9133/sterline-hr/internal/transport"
)

// Handler exposes the user account endpoints and the shared bearer-token
// middleware.
type Handler struct {
	*transport.BaseHandler
	service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the auth endpoints on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(pr chi.Router) {
		pr.Use(h.Middleware)
		pr.Get("/profile", h.Profile)
		pr.Put("/profile", h.UpdateProfile)
		pr.Put("/change-password", h.ChangePassword)
		pr.Post("/logout", h.Logout)
	})
}

// authEnvelope is the login/register response shape: token and user sit
// beside the envelope fields rather than under data.
type authEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Register(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, authEnvelope{
		Success: true,
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(dto)
	if err != nil {
		if err == ErrInvalidCredentials {
			h.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, authEnvelope{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Profile handles GET /api/auth/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.service.Profile(claims.UserID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(claims.UserID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusOK, "Profile updated successfully", profile)
}

// ChangePassword handles PUT /api/auth/change-password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(claims.UserID, dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Password changed successfully")
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the server
// only acknowledges; the client discards its copy.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.WriteMessage(w, http.StatusOK, "Logged out successfully")
}

// Middleware authenticates requests via the Authorization header and stores
// the verified claims on the request context.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := h.service.VerifyToken(token)
		if err != nil {
			if err == ErrTokenExpired {
				h.WriteError(w, http.StatusUnauthorized, "Token expired")
				return
			}
			h.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}
