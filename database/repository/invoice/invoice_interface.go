package invoiceRepo

import (
	"errors"

	"billify/models"
)

// ErrNotFound is returned when no export bill matches the given id.
var ErrNotFound = errors.New("export bill not found")

// ErrDuplicateBillNumber is returned when an insert collides with an existing
// bill number. The unique index on billNumber is the authoritative guard; the
// generator's randomness only makes collisions rare.
var ErrDuplicateBillNumber = errors.New("bill number already exists")

// InvoiceRepository defines storage operations for export bills.
type InvoiceRepository interface {
	// Insert persists a new export bill and returns it with the
	// storage-assigned id populated.
	Insert(inv *models.Invoice) (*models.Invoice, error)

	// GetAll retrieves every export bill in natural collection order.
	GetAll() ([]models.Invoice, error)

	// GetByID retrieves one export bill by its hex id.
	GetByID(id string) (*models.Invoice, error)

	// UpdateWithDocument applies a partial $set-style update to one export
	// bill. Callers decide which fields change; identity fields must never
	// appear in the document.
	UpdateWithDocument(id string, updateFields map[string]any) error

	// Delete removes an export bill permanently. A delete of an id that is
	// already gone fails with ErrNotFound rather than succeeding silently.
	Delete(id string) error
}
