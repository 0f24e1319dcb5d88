package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/service"
)

type QuotationHandler struct {
	quotationService *service.QuotationService
	referenceService *service.ReferenceNumberService
	exportService    *service.ExportService
	logger           *zap.Logger
}

func NewQuotationHandler(
	quotationService *service.QuotationService,
	referenceService *service.ReferenceNumberService,
	exportService *service.ExportService,
	logger *zap.Logger,
) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		referenceService: referenceService,
		exportService:    exportService,
		logger:           logger,
	}
}

// List godoc
// @Summary List quotations
// @Description Get a paginated list of quotations, optionally scoped to one company
// @Tags Quotations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search in reference number and party names"
// @Param companyId query string false "Filter by issuing company" format(uuid)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.QuotationDTO}
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /quotations [get]
func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	search := r.URL.Query().Get("search")

	var companyID *uuid.UUID
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid companyId filter")
			return
		}
		companyID = &id
	}

	result, err := h.quotationService.List(r.Context(), page, pageSize, search, companyID)
	if err != nil {
		h.logger.Error("failed to list quotations", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create quotation
// @Description Save a quotation. Party details are snapshotted and line figures recomputed server side. When referenceNumber is blank one is allocated for the issuing company.
// @Tags Quotations
// @Accept json
// @Produce json
// @Param request body domain.CreateQuotationRequest true "Quotation data"
// @Success 201 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError "Referenced company, client or employee does not exist"
// @Failure 500 {object} domain.APIError
// @Router /quotations [post]
func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	quotation, err := h.quotationService.Create(r.Context(), &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to create quotation", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/quotations/"+quotation.ID.String())
	respondJSON(w, http.StatusCreated, quotation)
}

// GetByID godoc
// @Summary Get quotation by ID
// @Description Get a quotation with its line items and frozen party snapshots
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quotation ID format")
		return
	}

	quotation, err := h.quotationService.GetByID(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to get quotation", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Delete godoc
// @Summary Delete quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quotation ID format")
		return
	}

	if err := h.quotationService.Delete(r.Context(), id); err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to delete quotation", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Preview godoc
// @Summary Preview quotation figures
// @Description Recompute per-line and aggregate figures for a draft payload without saving anything
// @Tags Quotations
// @Accept json
// @Produce json
// @Param request body domain.PreviewQuotationRequest true "Draft line items"
// @Success 200 {object} domain.PreviewQuotationResponse
// @Failure 400 {object} domain.APIError
// @Router /quotations/preview [post]
func (h *QuotationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req domain.PreviewQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.quotationService.Preview(r.Context(), &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to preview quotation", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// NextReferenceNumber godoc
// @Summary Next reference number
// @Description Compute the next reference number for the given company
// @Tags Quotations
// @Accept json
// @Produce json
// @Param companyId query string true "Issuing company ID" format(uuid)
// @Success 200 {object} domain.ReferenceNumberDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /quotations/reference-number [get]
func (h *QuotationHandler) NextReferenceNumber(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(r.URL.Query().Get("companyId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid or missing companyId")
		return
	}

	ref, err := h.referenceService.Next(r.Context(), companyID)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to compute reference number", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.ReferenceNumberDTO{ReferenceNumber: ref})
}

// PaymentTerms godoc
// @Summary List payment term presets
// @Description Get the preset payment term lines offered when drafting a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Success 200 {array} string
// @Router /quotations/payment-terms [get]
func (h *QuotationHandler) PaymentTerms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.DefaultPaymentTerms)
}

// Export godoc
// @Summary Export quotation as docx
// @Description Render the quotation into the Word template, archive the document and stream it back
// @Tags Quotations
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /quotations/{id}/export [post]
func (h *QuotationHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quotation ID format")
		return
	}

	result, err := h.exportService.Export(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to export quotation", zap.Error(err), zap.String("quotationId", id.String()))
		}
		respondServiceError(w, err)
		return
	}

	writeAttachment(w, result)
}

// ListDocuments godoc
// @Summary List exported documents
// @Description List the archived document versions exported for a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {array} domain.ExportedDocumentDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /quotations/{id}/documents [get]
func (h *QuotationHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quotation ID format")
		return
	}

	docs, err := h.exportService.ListDocuments(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to list exported documents", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

// DownloadDocument godoc
// @Summary Download exported document
// @Description Stream a previously exported document from the archive
// @Tags Quotations
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Document ID" format(uuid)
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{id} [get]
func (h *QuotationHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid document ID format")
		return
	}

	result, err := h.exportService.DownloadDocument(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to download document", zap.Error(err), zap.String("documentId", id.String()))
		}
		respondServiceError(w, err)
		return
	}

	writeAttachment(w, result)
}

func writeAttachment(w http.ResponseWriter, result *service.ExportResult) {
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	_, _ = w.Write(result.Content)
}
