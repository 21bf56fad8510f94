package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/keymaster/pos/internal/staff"
	"github.com/keymaster/pos/pkg/web"
)

// LoginRequest carries cashier credentials.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token to present on subsequent requests.
type LoginResponse struct {
	Token    string            `json:"token"`
	Employee staff.EmployeeDto `json:"employee"`
}

// Login authenticates an employee and opens a cashier session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	employee, err := h.employees.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidCredentials) {
			mLogger.WarnContext(r.Context(), "Login rejected", "email", req.Email)
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Email or password is incorrect")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error authenticating employee", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	id, err := uuid.Parse(employee.ID)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Stored employee has invalid ID", "ID", employee.ID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to authenticate")
		return
	}
	session := h.sessions.Begin(staff.Employee{
		ID:   id,
		Name: employee.Name,
		Role: staff.Role(employee.Role),
	})
	mLogger.InfoContext(r.Context(), "Cashier session opened", "employee", employee.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, LoginResponse{Token: session.Token, Employee: *employee})
}

// Logout closes the current cashier session and discards its cart.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	token, _ := web.GetSession(r.Context())
	h.sessions.End(token)
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// FindEmployeeByID retrieves an employee by ID.
func (h *Handler) FindEmployeeByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	found, err := h.employees.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, staff.ErrEmployeeNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Employee with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving employee", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve employee with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// FindAllEmployees lists all staff records.
func (h *Handler) FindAllEmployees(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.employees.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving employee list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// CreateEmployee adds a new staff record.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto staff.EmployeeCreateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	created, err := h.employees.Create(r.Context(), dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating employee", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create employee")
		return
	}
	mLogger.InfoContext(r.Context(), "Employee created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateEmployee modifies an existing staff record.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto staff.EmployeeUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	dto.ID = id.String()
	if err := h.validate.Struct(dto); err != nil {
		h.respondValidationError(w, r, err)
		return
	}

	updated, err := h.employees.Update(r.Context(), dto)
	if err != nil {
		if errors.Is(err, staff.ErrEmployeeNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Employee with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating employee", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update employee with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteEmployee removes a staff record by ID.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.employees.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, staff.ErrEmployeeNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Employee with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting employee", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete employee with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}
