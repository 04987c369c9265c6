package invoice

import "billify/models"

// InvoiceService defines the business operations over export bills.
// Every mutating operation validates the full incoming state and recomputes
// derived totals before touching storage.
type InvoiceService interface {
	CreateInvoice(in models.InvoiceInput) (*models.Invoice, error)
	GetAllInvoices() ([]models.Invoice, error)
	GetInvoiceByID(id string) (*models.Invoice, error)
	UpdateInvoice(id string, in models.InvoiceInput) (*models.Invoice, error)
	DeleteInvoice(id string) error
}
