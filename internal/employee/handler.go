package employee

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

// RegisterRoutes mounts the employee endpoints. Login is public; everything
// else sits behind the shared bearer middleware applied by the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/stats/overview", h.Stats)
	r.Get("/departments/list", h.Departments)
	r.Get("/designations/list", h.Designations)
	r.Get("/code/{empCode}", h.GetByCode)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Put("/{id}/activate", h.Activate)
	r.Delete("/{id}", h.Deactivate)
	r.Delete("/{id}/permanent", h.HardDelete)
}

// employeeAuthEnvelope is the login response: token and employee beside the
// envelope fields.
type employeeAuthEnvelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := transport.PageQuery(r)
	params := ListParams{
		Page:        page,
		Limit:       limit,
		Search:      r.URL.Query().Get("search"),
		Department:  r.URL.Query().Get("department"),
		Designation: r.URL.Query().Get("designation"),
		Gender:      r.URL.Query().Get("gender"),
		Shift:       r.URL.Query().Get("shift"),
		IsActive:    transport.QueryBool(r, "isActive"),
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

func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	row, err := h.service.GetByEmpCode(chi.URLParam(r, "empCode"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, row)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusCreated, "Employee created successfully", row)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(chi.URLParam(r, "id"), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteMessageData(w, http.StatusOK, "Employee updated successfully", row)
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Deactivate(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Employee deactivated successfully")
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Activate(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Employee activated successfully")
}

func (h *Handler) HardDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.HardDelete(chi.URLParam(r, "id")); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "Employee permanently deleted")
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

	h.WriteJSON(w, http.StatusOK, employeeAuthEnvelope{
		Success:  true,
		Message:  "Login successful",
		Token:    result.Token,
		Employee: result.Employee,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, stats)
}

func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.Departments()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, names)
}

func (h *Handler) Designations(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.Designations()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, names)
}
