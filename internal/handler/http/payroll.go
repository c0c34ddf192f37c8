package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ListStructures(w http.ResponseWriter, r *http.Request)
	GetStructure(w http.ResponseWriter, r *http.Request)
	GetMyStructure(w http.ResponseWriter, r *http.Request)
	UpdateStructure(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

// ListStructures implements PayrollHandler.
func (p *PayrollHandlerImpl) ListStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := p.payrollService.ListStructures(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

// GetStructure implements PayrollHandler.
func (p *PayrollHandlerImpl) GetStructure(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	caller, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	// Employees can only read their own structure
	if caller.Role != string(user.RoleHR) && caller.UserID != userID {
		response.HandleError(w, user.ErrForbidden)
		return
	}

	structure, err := p.payrollService.GetStructure(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure)
}

// GetMyStructure implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMyStructure(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	structure, err := p.payrollService.GetStructure(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structure)
}

// UpdateStructure implements PayrollHandler.
func (p *PayrollHandlerImpl) UpdateStructure(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateStructureRequest

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStructure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = userID

	updated, err := p.payrollService.UpdateStructure(r.Context(), req)
	if err != nil {
		slog.Error("UpdateStructure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated successfully", updated)
}

// GetHistory implements PayrollHandler.
func (p *PayrollHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	caller, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	if caller.Role != string(user.RoleHR) && caller.UserID != userID {
		response.HandleError(w, user.ErrForbidden)
		return
	}

	records, err := p.payrollService.GetHistory(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetMyHistory implements PayrollHandler.
func (p *PayrollHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	caller, ok := identityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	records, err := p.payrollService.GetHistory(r.Context(), caller.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}
