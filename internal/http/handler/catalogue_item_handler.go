package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/chembio-ls/quotation-api/internal/domain"
	"github.com/chembio-ls/quotation-api/internal/service"
)

type CatalogueItemHandler struct {
	itemService *service.CatalogueItemService
	logger      *zap.Logger
}

func NewCatalogueItemHandler(itemService *service.CatalogueItemService, logger *zap.Logger) *CatalogueItemHandler {
	return &CatalogueItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// List godoc
// @Summary List catalogue items
// @Description Get a paginated list of products quotable from the catalogue
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Param search query string false "Search in catalogue ID, description, CAS number and brand"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CatalogueItemDTO}
// @Failure 500 {object} domain.APIError
// @Router /catalogue-items [get]
func (h *CatalogueItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paginationParams(r)
	search := r.URL.Query().Get("search")

	result, err := h.itemService.List(r.Context(), page, pageSize, search)
	if err != nil {
		h.logger.Error("failed to list catalogue items", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create catalogue item
// @Description Add a product to the catalogue. When gstRate is omitted the rate is resolved from the HSN classification table.
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param request body domain.CreateCatalogueItemRequest true "Catalogue item data"
// @Success 201 {object} domain.CatalogueItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /catalogue-items [post]
func (h *CatalogueItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCatalogueItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	item, err := h.itemService.Create(r.Context(), &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to create catalogue item", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/catalogue-items/"+item.ID.String())
	respondJSON(w, http.StatusCreated, item)
}

// GetByID godoc
// @Summary Get catalogue item by ID
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue item ID" format(uuid)
// @Success 200 {object} domain.CatalogueItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /catalogue-items/{id} [get]
func (h *CatalogueItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid catalogue item ID format")
		return
	}

	item, err := h.itemService.GetByID(r.Context(), id)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to get catalogue item", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Update godoc
// @Summary Update catalogue item
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue item ID" format(uuid)
// @Param request body domain.UpdateCatalogueItemRequest true "Catalogue item data"
// @Success 200 {object} domain.CatalogueItemDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /catalogue-items/{id} [put]
func (h *CatalogueItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid catalogue item ID format")
		return
	}

	var req domain.UpdateCatalogueItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	item, err := h.itemService.Update(r.Context(), id, &req)
	if err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to update catalogue item", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete catalogue item
// @Tags Catalogue
// @Accept json
// @Produce json
// @Param id path string true "Catalogue item ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /catalogue-items/{id} [delete]
func (h *CatalogueItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid catalogue item ID format")
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		if !isExpectedError(err) {
			h.logger.Error("failed to delete catalogue item", zap.Error(err))
		}
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
