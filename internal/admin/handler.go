package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/santhosh9133/sterline-hr/internal/auth"
	"github.com/santhosh9133/sterline-hr/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the protected admin endpoints; login, register and
// setup-super-admin are wired separately as public routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/stats/overview", h.Stats)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/change-password", h.ChangePassword)
	r.Put("/{id}/deactivate", h.Deactivate)
	r.Put("/{id}/activate", h.Activate)
}

// adminAuthEnvelope is the login response shape.
type adminAuthEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Admin   AdminResponse `json:"admin"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var createdBy *string
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		createdBy = &claims.UserID
	}

	row, err := h.service.Register(dto, createdBy)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusCreated, "Admin registered successfully", row)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(dto)
	if err != nil {
		if err == auth.ErrInvalidCredentials {
			h.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, adminAuthEnvelope{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		Admin:   result.Admin,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := transport.PageQuery(r)
	params := ListParams{
		Page:     page,
		Limit:    limit,
		Search:   r.URL.Query().Get("search"),
		Role:     r.URL.Query().Get("role"),
		IsActive: transport.QueryBool(r, "isActive"),
	}

	rows, total, err := h.service.List(params)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WritePage(w, rows, transport.NewPagination(page, limit, total))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, row)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusOK, "Admin updated successfully", row)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var dto ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(chi.URLParam(r, "id"), dto); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessage(w, http.StatusOK, "Password changed successfully")
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Deactivate(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Admin deactivated successfully")
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Activate(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Admin activated successfully")
}

func (h *Handler) SetupSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var dto SetupSuperAdminDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.SetupSuperAdmin(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusCreated, "Super admin created successfully", row)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, stats)
}
