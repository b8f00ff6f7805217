package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/logger"
	"github.com/quotedesk/quotedesk/internal/service"
	"github.com/quotedesk/quotedesk/internal/types"
)

type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, log: log}
}

// @Summary Preview a document section
// @Description Render one section of the quotation as PDF and register it for pack assembly
// @Tags Documents
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Param section path string true "Section" Enums(agreement, interiors, false_ceiling)
// @Success 200 {file} binary
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /quotations/{id}/preview/{section} [post]
func (h *DocumentHandler) PreviewSection(c *gin.Context) {
	quotationID := c.Param("id")
	section := types.DocumentSection(c.Param("section"))

	data, err := h.service.PreviewSection(c.Request.Context(), quotationID, section)
	if err != nil {
		h.log.Errorw("Failed to render section preview",
			"quotation_id", quotationID,
			"section", section,
			"error", err)
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary Generate the agreement pack
// @Description Merge the agreement and every enabled annexure (with title pages) into one PDF; fails when an enabled annexure was never previewed
// @Tags Documents
// @Produce application/pdf
// @Param id path string true "Quotation ID"
// @Success 200 {file} binary
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /quotations/{id}/agreement-pack [post]
func (h *DocumentHandler) AssembleAgreementPack(c *gin.Context) {
	quotationID := c.Param("id")
	if quotationID == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Quotation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AssembleAgreementPack(c.Request.Context(), quotationID)
	if err != nil {
		h.log.Errorw("Failed to assemble agreement pack",
			"quotation_id", quotationID,
			"error", err)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.Filename))
	c.Data(http.StatusOK, "application/pdf", resp.Data)
}
