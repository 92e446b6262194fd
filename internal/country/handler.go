package country

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/santhosh9133/sterline-hr/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/active", h.ListActive)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Patch("/{id}/toggle-status", h.ToggleStatus)
	r.Put("/{id}/toggle-status", h.ToggleStatus)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := transport.PageQuery(r)
	params := ListParams{
		Page:     page,
		Limit:    limit,
		Search:   r.URL.Query().Get("search"),
		IsActive: transport.QueryBool(r, "isActive"),
	}

	rows, total, err := h.service.List(params)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WritePage(w, rows, transport.NewPagination(page, limit, total))
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.GetActive()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, rows)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, row)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateCountryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusCreated, "Country created successfully", row)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateCountryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusOK, "Country updated successfully", row)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Country deleted successfully")
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	row, err := h.service.ToggleStatus(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessageData(w, http.StatusOK, "Country status updated successfully", row)
}
