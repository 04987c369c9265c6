package invoiceRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"billify/config"
	"billify/database"
	"billify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// phonePattern re-validates the customer phone at the storage boundary,
// independently of the service-level validator.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new instance of InvoiceRepository using MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("exports")
	repo := &MongoInvoiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Insert persists a new export bill document.
func (r *MongoInvoiceRepo) Insert(inv *models.Invoice) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if !phonePattern.MatchString(inv.CustomerPhone) {
		return nil, fmt.Errorf("%s is not a valid customer phone number", inv.CustomerPhone)
	}

	res, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateBillNumber
		}
		return nil, fmt.Errorf("failed to create export bill: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inv.ID = oid
	}
	return inv, nil
}

// GetAll retrieves all export bills (full documents).
func (r *MongoInvoiceRepo) GetAll() ([]models.Invoice, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve export bills: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode export bill: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// GetByID retrieves an export bill by its hex id.
func (r *MongoInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch export bill with id %s: %w", id, err)
	}
	return &inv, nil
}

// UpdateWithDocument applies a partial update to one export bill document.
func (r *MongoInvoiceRepo) UpdateWithDocument(id string, updateFields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	if phone, ok := updateFields["customerPhone"].(string); ok && !phonePattern.MatchString(phone) {
		return fmt.Errorf("%s is not a valid customer phone number", phone)
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": updateFields})
	if err != nil {
		return fmt.Errorf("failed to update export bill with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an export bill document by its hex id.
func (r *MongoInvoiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete export bill with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
