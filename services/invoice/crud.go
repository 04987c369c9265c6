package invoice

import (
	"errors"
	"fmt"
	"time"

	invoiceRepo "billify/database/repository/invoice"
	"billify/models"
	"billify/utils"

	"go.uber.org/zap"
)

// billNumberAttempts bounds how many fresh bill numbers Create tries when the
// unique index reports a collision.
const billNumberAttempts = 3

// DefaultInvoiceService implements InvoiceService against an
// InvoiceRepository, with an optional read-through cache for lookups.
type DefaultInvoiceService struct {
	Repo  invoiceRepo.InvoiceRepository
	Cache *InvoiceCache

	// GenerateBillNumber overrides NewBillNumber when set; tests use it to
	// make numbering deterministic.
	GenerateBillNumber func() string
}

func (s *DefaultInvoiceService) billNumber() string {
	if s.GenerateBillNumber != nil {
		return s.GenerateBillNumber()
	}
	return NewBillNumber()
}

// CreateInvoice validates the draft, assigns a bill number, derives totals,
// and persists the bill. On a bill number collision it regenerates and
// retries a bounded number of times.
func (s *DefaultInvoiceService) CreateInvoice(in models.InvoiceInput) (*models.Invoice, error) {
	logger := utils.GetLogger()

	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	items, totalAmount := Calculate(in.Items)
	inv := &models.Invoice{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		TotalAmount:   totalAmount,
		CreatedAt:     time.Now(),
	}

	var lastErr error
	for attempt := 0; attempt < billNumberAttempts; attempt++ {
		inv.BillNumber = s.billNumber()
		created, err := s.Repo.Insert(inv)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, invoiceRepo.ErrDuplicateBillNumber) {
			logger.Error("Failed to create export bill", zap.Error(err))
			return nil, err
		}
		logger.Warn("Bill number collision, regenerating",
			zap.String("billNumber", inv.BillNumber), zap.Int("attempt", attempt+1))
		lastErr = err
	}
	return nil, fmt.Errorf("failed to create export bill after %d attempts: %w", billNumberAttempts, lastErr)
}

// GetAllInvoices returns every export bill.
func (s *DefaultInvoiceService) GetAllInvoices() ([]models.Invoice, error) {
	return s.Repo.GetAll()
}

// GetInvoiceByID returns one export bill, consulting the cache first.
func (s *DefaultInvoiceService) GetInvoiceByID(id string) (*models.Invoice, error) {
	if cached := s.Cache.Get(id); cached != nil {
		return cached, nil
	}
	inv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(inv)
	return inv, nil
}

// UpdateInvoice replaces the customer fields and items of an existing bill
// with freshly derived totals. The bill number, id, and creation time are
// never part of the update document, so they cannot change.
func (s *DefaultInvoiceService) UpdateInvoice(id string, in models.InvoiceInput) (*models.Invoice, error) {
	logger := utils.GetLogger()

	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	items, totalAmount := Calculate(in.Items)
	updateFields := map[string]any{
		"customerName":  in.CustomerName,
		"customerPhone": in.CustomerPhone,
		"items":         items,
		"totalAmount":   totalAmount,
	}

	if err := s.Repo.UpdateWithDocument(id, updateFields); err != nil {
		if !errors.Is(err, invoiceRepo.ErrNotFound) {
			logger.Error("Failed to update export bill", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	s.Cache.Invalidate(id)

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		logger.Error("Failed to fetch updated export bill", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.Cache.Set(updated)
	return updated, nil
}

// DeleteInvoice removes an export bill permanently.
func (s *DefaultInvoiceService) DeleteInvoice(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.Cache.Invalidate(id)
	return nil
}
