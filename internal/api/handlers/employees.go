package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/employee-backend/internal/api/httpx"
	"github.com/baharkarakas/employee-backend/internal/api/validate"
	"github.com/baharkarakas/employee-backend/internal/middleware"
	"github.com/baharkarakas/employee-backend/internal/models"
	"github.com/baharkarakas/employee-backend/internal/repository"
	"github.com/baharkarakas/employee-backend/internal/services"
)

type EmployeeHandler struct {
	Svc *services.EmployeeService
}

func NewEmployeeHandler(svc *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.List(r.Context())
	if err != nil {
		h.fail(w, r, "list", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.Get(r.Context(), chi.URLParam(r, "empId"))
	if err != nil {
		h.fail(w, r, "get", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	e, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, "create", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEmployeeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	e, err := h.Svc.Update(r.Context(), chi.URLParam(r, "empId"), req)
	if err != nil {
		h.fail(w, r, "update", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Svc.Delete(r.Context(), chi.URLParam(r, "empId")); err != nil {
		h.fail(w, r, "delete", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}

// fail maps service errors onto status codes. Only store failures are logged
// as errors, and their detail never reaches the client.
func (h *EmployeeHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var fe *validate.ErrField
	switch {
	case errors.As(err, &fe):
		slog.DebugContext(r.Context(), "rejected input", "op", op, "field", fe.Field)
		httpx.WriteError(w, http.StatusBadRequest, fe.Msg)
	case errors.Is(err, services.ErrEmployeeExists):
		httpx.WriteError(w, http.StatusBadRequest, "Employee ID already exists")
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Employee not found")
	default:
		slog.ErrorContext(r.Context(), "employee store failure",
			"op", op,
			"emp_id", chi.URLParam(r, "empId"),
			"request_id", middleware.RequestIDFrom(r.Context()),
			"err", err,
		)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
