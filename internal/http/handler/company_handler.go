package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/service"
)

type CompanyHandler struct {
	companyService *service.CompanyService
	logger         *zap.Logger
}

func NewCompanyHandler(companyService *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// List godoc
// @Summary List companies
// @Description Get a paginated list of quoting companies
// @Tags Companies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search in name, email and GST number"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CompanyDTO}
// @Failure 500 {object} domain.APIError
// @Router /companies [get]
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	search := r.URL.Query().Get("search")

	result, err := h.companyService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create company
// @Description Register a new quoting company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body domain.CreateCompanyRequest true "Company data"
// @Success 201 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /companies [post]
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	company, err := h.companyService.Create(r.Context(), &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to create company", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/companies/"+company.ID.String())
	respondJSON(w, http.StatusCreated, company)
}

// GetByID godoc
// @Summary Get company by ID
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID" format(uuid)
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	company, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to get company", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, company)
}

// Update godoc
// @Summary Update company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID" format(uuid)
// @Param request body domain.UpdateCompanyRequest true "Company data"
// @Success 200 {object} domain.CompanyDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	var req domain.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	company, err := h.companyService.Update(r.Context(), id, &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to update company", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, company)
}

// Delete godoc
// @Summary Delete company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to delete company", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadSeal godoc
// @Summary Upload company seal
// @Description Attach a seal or stamp image (data URI) stamped onto exported quotations
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID" format(uuid)
// @Param request body domain.UploadSealRequest true "Seal image as data URI"
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 413 {object} domain.APIError "Image exceeds the size limit"
// @Router /companies/{id}/seal [post]
func (h *CompanyHandler) UploadSeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID format")
		return
	}

	var req domain.UploadSealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	if err := h.companyService.UploadSeal(r.Context(), id, &req); err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to upload seal", zap.Error(err), zap.String("companyId", id.String()))
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
