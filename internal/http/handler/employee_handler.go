package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeHandler(employeeService *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// List godoc
// @Summary List employees
// @Description Get a paginated list of sales employees who can sign quotations
// @Tags Employees
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search in name and email"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.EmployeeDTO}
// @Failure 500 {object} domain.APIError
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	search := r.URL.Query().Get("search")

	result, err := h.employeeService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list employees", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body domain.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} domain.EmployeeDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	employee, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to create employee", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/employees/"+employee.ID.String())
	respondJSON(w, http.StatusCreated, employee)
}

// GetByID godoc
// @Summary Get employee by ID
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Success 200 {object} domain.EmployeeDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	employee, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to get employee", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// Update godoc
// @Summary Update employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Param request body domain.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} domain.EmployeeDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var req domain.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	employee, err := h.employeeService.Update(r.Context(), id, &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to update employee", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// Delete godoc
// @Summary Delete employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to delete employee", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
