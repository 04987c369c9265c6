package handlers

import (
	"errors"
	"net/http"

	invoiceRepo "billify/database/repository/invoice"
	"billify/models"
	"billify/services/invoice"
	"billify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes export bill operations over HTTP.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler backed by the given service.
func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// respondError maps service and repository errors to the HTTP status policy:
// validation failures are 400, lookup misses are 404, everything else is 500
// with the internal error attached for diagnostics.
func respondError(c *gin.Context, err error) {
	logger := utils.GetLogger()
	switch {
	case invoice.IsValidationError(err):
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: err.Error()})
	case errors.Is(err, invoiceRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, Envelope{Success: false, Message: "Export bill not found"})
	default:
		logger.Error("Unexpected error handling export bill request",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

// CreateExportBillHandler handles POST /api/v1/export.
func (h *InvoiceHandler) CreateExportBillHandler(c *gin.Context) {
	var in models.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	inv, err := h.Service.CreateInvoice(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: "Export bill created successfully",
		Data:    inv,
	})
}

// ListExportBillsHandler handles GET /api/v1/export.
func (h *InvoiceHandler) ListExportBillsHandler(c *gin.Context) {
	invoices, err := h.Service.GetAllInvoices()
	if err != nil {
		respondError(c, err)
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Export bills fetched successfully",
		Data:    invoices,
	})
}

// GetExportBillByIDHandler handles GET /api/v1/export/:id.
func (h *InvoiceHandler) GetExportBillByIDHandler(c *gin.Context) {
	inv, err := h.Service.GetInvoiceByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Export bill fetched successfully",
		Data:    inv,
	})
}

// UpdateExportBillHandler handles PUT /api/v1/export/:id.
func (h *InvoiceHandler) UpdateExportBillHandler(c *gin.Context) {
	var in models.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	inv, err := h.Service.UpdateInvoice(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Export bill updated successfully",
		Data:    inv,
	})
}

// DeleteExportBillHandler handles DELETE /api/v1/export/:id.
func (h *InvoiceHandler) DeleteExportBillHandler(c *gin.Context) {
	if err := h.Service.DeleteInvoice(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "Export bill deleted successfully",
	})
}
