package order

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
	r.Post("/", h.Create)
	r.Get("/user/{userId}", h.ListByUser)
	r.Get("/item/{foodItem}", h.ListByFoodItem)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusCreated, "Order created successfully", row)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, rows)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.GetByUser(chi.URLParam(r, "userId"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, rows)
}

func (h *Handler) ListByFoodItem(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.GetByFoodItem(chi.URLParam(r, "foodItem"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, rows)
}
