package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice represents one export bill (sales invoice).
// Amounts are whole currency units held as int64 so line and grand totals
// stay exact under multiplication and summation.
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BillNumber    string             `bson:"billNumber" json:"billNumber"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	Items         []LineItem         `bson:"items" json:"items"`
	TotalAmount   int64              `bson:"totalAmount" json:"totalAmount"` // derived: sum of item totals
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// LineItem is one product line on an export bill. It has no identity outside
// its invoice.
type LineItem struct {
	Name     string `bson:"name" json:"name"`
	Price    int64  `bson:"price" json:"price"`
	Quantity int64  `bson:"quantity" json:"quantity"`
	Total    int64  `bson:"total" json:"total"` // derived: price * quantity
}

// InvoiceInput is the caller-supplied draft for create and update requests.
// Identity fields (id, billNumber, createdAt) are never taken from callers,
// and any supplied totals are discarded and recomputed before persisting.
type InvoiceInput struct {
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Items         []LineItemInput `json:"items"`
}

// LineItemInput is one draft line as submitted by the client.
type LineItemInput struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Total    int64  `json:"total"` // ignored on intake, always recomputed
}
