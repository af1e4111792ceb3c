package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/leadsadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCategory inserts a category with the given name.
func (f *Fixtures) CreateCategory(ctx context.Context, name string) models.Category {
	f.t.Helper()

	cat := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("categories").InsertOne(ctx, cat); err != nil {
		f.t.Fatalf("failed to create test category: %v", err)
	}
	return cat
}

// CreateLead inserts a lead with placeholder contact details.
func (f *Fixtures) CreateLead(ctx context.Context, businessName, category string) models.Lead {
	f.t.Helper()
	return f.CreateLeadAt(ctx, businessName, category, time.Now().UTC())
}

// CreateLeadAt inserts a lead with an explicit creation time, for ordering tests.
func (f *Fixtures) CreateLeadAt(ctx context.Context, businessName, category string, createdAt time.Time) models.Lead {
	f.t.Helper()

	lead := models.Lead{
		ID:           primitive.NewObjectID(),
		BusinessName: businessName,
		Category:     category,
		Email:        "info@example.com",
		Phone:        "555-0100",
		Address:      "1 Main St",
		SocialMedia:  []models.SocialLink{},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	if _, err := f.db.Collection("leads").InsertOne(ctx, lead); err != nil {
		f.t.Fatalf("failed to create test lead: %v", err)
	}
	return lead
}
