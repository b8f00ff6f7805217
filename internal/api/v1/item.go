package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quotedesk/quotedesk/internal/api/dto"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/service"
)

type ItemHandler struct {
	service service.ItemService
	log     *logger.Logger
}

func NewItemHandler(service service.ItemService, log *logger.Logger) *ItemHandler {
	return &ItemHandler{service: service, log: log}
}

// @Summary Add an interior item
// @Description Add a priced interior work line item to a quotation
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param item body dto.CreateInteriorItemRequest true "Item details"
// @Success 201 {object} dto.InteriorItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/interior-items [post]
func (h *ItemHandler) CreateInteriorItem(c *gin.Context) {
	quotationID := c.Param("id")
	var req dto.CreateInteriorItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInteriorItem(c.Request.Context(), quotationID, req)
	if err != nil {
		h.log.Errorw("Failed to create interior item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List interior items
// @Description List the interior line items of a quotation
// @Tags Items
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {array} dto.InteriorItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id}/interior-items [get]
func (h *ItemHandler) ListInteriorItems(c *gin.Context) {
	resp, err := h.service.ListInteriorItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an interior item
// @Description Partially update an interior item; changing a rate-bearing field clears any manual rate override
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param item body dto.UpdateInteriorItemRequest true "Fields to update"
// @Success 200 {object} dto.InteriorItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /interior-items/{item_id} [put]
func (h *ItemHandler) UpdateInteriorItem(c *gin.Context) {
	var req dto.UpdateInteriorItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInteriorItem(c.Request.Context(), c.Param("item_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an interior item
// @Tags Items
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /interior-items/{item_id} [delete]
func (h *ItemHandler) DeleteInteriorItem(c *gin.Context) {
	if err := h.service.DeleteInteriorItem(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add a false-ceiling item
// @Description Add a false-ceiling line item to a quotation
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param item body dto.CreateCeilingItemRequest true "Item details"
// @Success 201 {object} dto.CeilingItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/ceiling-items [post]
func (h *ItemHandler) CreateCeilingItem(c *gin.Context) {
	quotationID := c.Param("id")
	var req dto.CreateCeilingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCeilingItem(c.Request.Context(), quotationID, req)
	if err != nil {
		h.log.Errorw("Failed to create ceiling item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List false-ceiling items
// @Tags Items
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {array} dto.CeilingItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id}/ceiling-items [get]
func (h *ItemHandler) ListCeilingItems(c *gin.Context) {
	resp, err := h.service.ListCeilingItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a false-ceiling item
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param item body dto.UpdateCeilingItemRequest true "Fields to update"
// @Success 200 {object} dto.CeilingItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /ceiling-items/{item_id} [put]
func (h *ItemHandler) UpdateCeilingItem(c *gin.Context) {
	var req dto.UpdateCeilingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCeilingItem(c.Request.Context(), c.Param("item_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a false-ceiling item
// @Tags Items
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /ceiling-items/{item_id} [delete]
func (h *ItemHandler) DeleteCeilingItem(c *gin.Context) {
	if err := h.service.DeleteCeilingItem(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add an other item
// @Description Add a miscellaneous line item (painting, lump sums, counted extras) to a quotation
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID"
// @Param item body dto.CreateOtherItemRequest true "Item details"
// @Success 201 {object} dto.OtherItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/other-items [post]
func (h *ItemHandler) CreateOtherItem(c *gin.Context) {
	quotationID := c.Param("id")
	var req dto.CreateOtherItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateOtherItem(c.Request.Context(), quotationID, req)
	if err != nil {
		h.log.Errorw("Failed to create other item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List other items
// @Tags Items
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 200 {array} dto.OtherItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id}/other-items [get]
func (h *ItemHandler) ListOtherItems(c *gin.Context) {
	resp, err := h.service.ListOtherItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an other item
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param item body dto.UpdateOtherItemRequest true "Fields to update"
// @Success 200 {object} dto.OtherItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /other-items/{item_id} [put]
func (h *ItemHandler) UpdateOtherItem(c *gin.Context) {
	var req dto.UpdateOtherItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateOtherItem(c.Request.Context(), c.Param("item_id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an other item
// @Tags Items
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /other-items/{item_id} [delete]
func (h *ItemHandler) DeleteOtherItem(c *gin.Context) {
	if err := h.service.DeleteOtherItem(c.Request.Context(), c.Param("item_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
