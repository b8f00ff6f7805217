package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	"github.com/quotedesk/quotedesk/internal/domain/ratecard"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/types"
)

type RateCardHandler struct {
	service service.RateCardService
	log     *logger.Logger
}

func NewRateCardHandler(service service.RateCardService, log *logger.Logger) *RateCardHandler {
	return &RateCardHandler{service: service, log: log}
}

// @Summary Create a rate entry
// @Description Create a row of the rate table
// @Tags RateCard
// @Accept json
// @Produce json
// @Param rate body dto.CreateRateEntryRequest true "Rate entry"
// @Success 201 {object} dto.RateEntryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rates [post]
func (h *RateCardHandler) CreateRateEntry(c *gin.Context) {
	var req dto.CreateRateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRateEntry(c.Request.Context(), req)
	if err != nil {
		h.log.Errorw("Failed to create rate entry", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a rate entry
// @Tags RateCard
// @Produce json
// @Param id path string true "Rate entry ID"
// @Success 200 {object} dto.RateEntryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rates/{id} [get]
func (h *RateCardHandler) GetRateEntry(c *gin.Context) {
	resp, err := h.service.GetRateEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List rate entries
// @Description List rate entries with optional axis filters
// @Tags RateCard
// @Produce json
// @Param filter query ratecard.Filter false "Filter"
// @Success 200 {object} dto.ListRateEntriesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /rates [get]
func (h *RateCardHandler) ListRateEntries(c *gin.Context) {
	var filter ratecard.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	resp, err := h.service.ListRateEntries(c.Request.Context(), &filter)
	if err != nil {
		h.log.Errorw("Failed to list rate entries", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a rate entry
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Rate entry ID"
// @Param rate body dto.UpdateRateEntryRequest true "Fields to update"
// @Success 200 {object} dto.RateEntryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rates/{id} [put]
func (h *RateCardHandler) UpdateRateEntry(c *gin.Context) {
	var req dto.UpdateRateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRateEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Patch a rate entry's base rate
// @Description Inline edit of the base rate; the raw value is sanitized and the write is debounced
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Rate entry ID"
// @Param value body dto.PatchBaseRateRequest true "Raw input value"
// @Success 202
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rates/{id}/base-rate [patch]
func (h *RateCardHandler) PatchBaseRate(c *gin.Context) {
	var req dto.PatchBaseRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.PatchBaseRate(c.Request.Context(), c.Param("id"), req); err != nil {
		c.Error(err)
		return
	}

	// Accepted: the write lands after the debounce window.
	c.Status(http.StatusAccepted)
}

// @Summary Delete a rate entry
// @Tags RateCard
// @Produce json
// @Param id path string true "Rate entry ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /rates/{id} [delete]
func (h *RateCardHandler) DeleteRateEntry(c *gin.Context) {
	if err := h.service.DeleteRateEntry(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Resolve a rate
// @Description Resolve the per-sqft rate for a material combination, including fallbacks and finish adders
// @Tags RateCard
// @Produce json
// @Param probe query dto.ResolveRateRequest true "Combination"
// @Success 200 {object} dto.ResolveRateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /rates/resolve [get]
func (h *RateCardHandler) ResolveRate(c *gin.Context) {
	var req dto.ResolveRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ResolveRate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create a brand adder
// @Description Create a per-sqft finish surcharge
// @Tags RateCard
// @Accept json
// @Produce json
// @Param adder body dto.CreateBrandAdderRequest true "Brand adder"
// @Success 201 {object} dto.BrandAdderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /brand-adders [post]
func (h *RateCardHandler) CreateBrandAdder(c *gin.Context) {
	var req dto.CreateBrandAdderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateBrandAdder(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List brand adders
// @Tags RateCard
// @Produce json
// @Success 200 {object} dto.ListBrandAddersResponse
// @Router /brand-adders [get]
func (h *RateCardHandler) ListBrandAdders(c *gin.Context) {
	var filter ratecard.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListBrandAdders(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a brand adder
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Brand adder ID"
// @Param adder body dto.UpdateBrandAdderRequest true "Fields to update"
// @Success 200 {object} dto.BrandAdderResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /brand-adders/{id} [put]
func (h *RateCardHandler) UpdateBrandAdder(c *gin.Context) {
	var req dto.UpdateBrandAdderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateBrandAdder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a brand adder
// @Tags RateCard
// @Produce json
// @Param id path string true "Brand adder ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /brand-adders/{id} [delete]
func (h *RateCardHandler) DeleteBrandAdder(c *gin.Context) {
	if err := h.service.DeleteBrandAdder(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create a catalog item
// @Description Create a painting or false-ceiling catalog entry
// @Tags RateCard
// @Accept json
// @Produce json
// @Param item body dto.CreateCatalogItemRequest true "Catalog item"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /catalog-items [post]
func (h *RateCardHandler) CreateCatalogItem(c *gin.Context) {
	var req dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCatalogItem(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a catalog item
// @Tags RateCard
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /catalog-items/{id} [get]
func (h *RateCardHandler) GetCatalogItem(c *gin.Context) {
	resp, err := h.service.GetCatalogItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List catalog items
// @Tags RateCard
// @Produce json
// @Param filter query ratecard.Filter false "Filter"
// @Success 200 {object} dto.ListCatalogItemsResponse
// @Router /catalog-items [get]
func (h *RateCardHandler) ListCatalogItems(c *gin.Context) {
	var filter ratecard.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCatalogItems(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a catalog item
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Catalog item ID"
// @Param item body dto.UpdateCatalogItemRequest true "Fields to update"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /catalog-items/{id} [put]
func (h *RateCardHandler) UpdateCatalogItem(c *gin.Context) {
	var req dto.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCatalogItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a catalog item
// @Tags RateCard
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /catalog-items/{id} [delete]
func (h *RateCardHandler) DeleteCatalogItem(c *gin.Context) {
	if err := h.service.DeleteCatalogItem(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
