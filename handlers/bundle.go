package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Export bill endpoints.
	CreateExportBillHandler  gin.HandlerFunc
	ListExportBillsHandler   gin.HandlerFunc
	GetExportBillByIDHandler gin.HandlerFunc
	UpdateExportBillHandler  gin.HandlerFunc
	DeleteExportBillHandler  gin.HandlerFunc
}

// NewHandlerBundle wires an InvoiceHandler's endpoints into a bundle.
func NewHandlerBundle(ih *InvoiceHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateExportBillHandler:  ih.CreateExportBillHandler,
		ListExportBillsHandler:   ih.ListExportBillsHandler,
		GetExportBillByIDHandler: ih.GetExportBillByIDHandler,
		UpdateExportBillHandler:  ih.UpdateExportBillHandler,
		DeleteExportBillHandler:  ih.DeleteExportBillHandler,
	}
}
