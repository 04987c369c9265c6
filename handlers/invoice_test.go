package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	invoiceRepo "billify/database/repository/invoice"
	"billify/models"
	"billify/services/invoice"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock service
type mockInvoiceService struct {
	createFunc func(in models.InvoiceInput) (*models.Invoice, error)
	getAllFunc func() ([]models.Invoice, error)
	getFunc    func(id string) (*models.Invoice, error)
	updateFunc func(id string, in models.InvoiceInput) (*models.Invoice, error)
	deleteFunc func(id string) error
}

func (m *mockInvoiceService) CreateInvoice(in models.InvoiceInput) (*models.Invoice, error) {
	return m.createFunc(in)
}

func (m *mockInvoiceService) GetAllInvoices() ([]models.Invoice, error) {
	return m.getAllFunc()
}

func (m *mockInvoiceService) GetInvoiceByID(id string) (*models.Invoice, error) {
	return m.getFunc(id)
}

func (m *mockInvoiceService) UpdateInvoice(id string, in models.InvoiceInput) (*models.Invoice, error) {
	return m.updateFunc(id, in)
}

func (m *mockInvoiceService) DeleteInvoice(id string) error {
	return m.deleteFunc(id)
}

func newTestRouter(svc invoice.InvoiceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	hb := NewHandlerBundle(NewInvoiceHandler(svc))
	api := r.Group("/api/v1")
	api.POST("/export", hb.CreateExportBillHandler)
	api.GET("/export", hb.ListExportBillsHandler)
	api.GET("/export/:id", hb.GetExportBillByIDHandler)
	api.PUT("/export/:id", hb.UpdateExportBillHandler)
	api.DELETE("/export/:id", hb.DeleteExportBillHandler)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateExportBill(t *testing.T) {
	svc := &mockInvoiceService{
		createFunc: func(in models.InvoiceInput) (*models.Invoice, error) {
			items, total := invoice.Calculate(in.Items)
			return &models.Invoice{
				ID:            primitive.NewObjectID(),
				BillNumber:    "XB1748770200000042",
				CustomerName:  in.CustomerName,
				CustomerPhone: in.CustomerPhone,
				Items:         items,
				TotalAmount:   total,
			}, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"customerName":"An","customerPhone":"0901234567","items":[{"name":"Pen","price":5000,"quantity":3},{"name":"Book","price":20000,"quantity":1}]}`
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/export", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Export bill created successfully", env.Message)

	var created models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "XB1748770200000042", created.BillNumber)
	assert.Equal(t, int64(15000), created.Items[0].Total)
	assert.Equal(t, int64(20000), created.Items[1].Total)
	assert.Equal(t, int64(35000), created.TotalAmount)
}

func TestCreateExportBillMalformedBody(t *testing.T) {
	svc := &mockInvoiceService{
		createFunc: func(in models.InvoiceInput) (*models.Invoice, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/export", `{"customerName":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestCreateExportBillValidationFailure(t *testing.T) {
	svc := &mockInvoiceService{
		createFunc: func(in models.InvoiceInput) (*models.Invoice, error) {
			return nil, invoice.MissingFieldError{Field: "items"}
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/export", `{"customerName":"An","customerPhone":"0901234567","items":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "items is required", env.Message)
}

func TestCreateExportBillStorageFailure(t *testing.T) {
	svc := &mockInvoiceService{
		createFunc: func(in models.InvoiceInput) (*models.Invoice, error) {
			return nil, assert.AnError
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/export", `{"customerName":"An","customerPhone":"0901234567","items":[{"name":"Pen","price":5000,"quantity":3}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotEmpty(t, env.Error)
}

func TestListExportBills(t *testing.T) {
	svc := &mockInvoiceService{
		getAllFunc: func() ([]models.Invoice, error) {
			return []models.Invoice{
				{BillNumber: "XB1", TotalAmount: 100},
				{BillNumber: "XB2", TotalAmount: 200},
			}, nil
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/export", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var invoices []models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &invoices))
	assert.Len(t, invoices, 2)
}

func TestListExportBillsEmpty(t *testing.T) {
	svc := &mockInvoiceService{
		getAllFunc: func() ([]models.Invoice, error) {
			return nil, nil
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/export", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data), "an empty store must serialize as an empty array, not null")
}

func TestGetExportBillByIDNotFound(t *testing.T) {
	svc := &mockInvoiceService{
		getFunc: func(id string) (*models.Invoice, error) {
			return nil, invoiceRepo.ErrNotFound
		},
	}
	r := newTestRouter(svc)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/export/"+primitive.NewObjectID().Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Export bill not found", env.Message)
}

func TestUpdateExportBill(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &mockInvoiceService{
		updateFunc: func(id string, in models.InvoiceInput) (*models.Invoice, error) {
			items, total := invoice.Calculate(in.Items)
			return &models.Invoice{
				ID:            oid,
				BillNumber:    "XB1748770200000042",
				CustomerName:  in.CustomerName,
				CustomerPhone: in.CustomerPhone,
				Items:         items,
				TotalAmount:   total,
			}, nil
		},
	}
	r := newTestRouter(svc)

	// Spoofed identity and total fields in the body are not part of the input
	// shape and never reach the service.
	body := `{"customerName":"An","customerPhone":"0901234567","billNumber":"XB000","totalAmount":1,"items":[{"name":"Pen","price":5000,"quantity":10,"total":1}]}`
	w, env := doJSON(t, r, http.MethodPut, "/api/v1/export/"+oid.Hex(), body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Export bill updated successfully", env.Message)

	var updated models.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "XB1748770200000042", updated.BillNumber)
	assert.Equal(t, int64(50000), updated.TotalAmount)
}

func TestUpdateExportBillNotFound(t *testing.T) {
	svc := &mockInvoiceService{
		updateFunc: func(id string, in models.InvoiceInput) (*models.Invoice, error) {
			return nil, invoiceRepo.ErrNotFound
		},
	}
	r := newTestRouter(svc)

	body := `{"customerName":"An","customerPhone":"0901234567","items":[{"name":"Pen","price":5000,"quantity":10}]}`
	w, env := doJSON(t, r, http.MethodPut, "/api/v1/export/"+primitive.NewObjectID().Hex(), body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestDeleteExportBill(t *testing.T) {
	calls := 0
	svc := &mockInvoiceService{
		deleteFunc: func(id string) error {
			calls++
			if calls > 1 {
				return invoiceRepo.ErrNotFound
			}
			return nil
		},
	}
	r := newTestRouter(svc)
	path := "/api/v1/export/" + primitive.NewObjectID().Hex()

	w, env := doJSON(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Export bill deleted successfully", env.Message)

	// Deleting the same bill again is a 404, never a silent success.
	w, env = doJSON(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
