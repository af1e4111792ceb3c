// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/leadsadmin/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateCategory is returned when the name is already stored.
	ErrDuplicateCategory = errors.New("a category with this name already exists")
	// ErrNameRequired is returned for an empty or blank name.
	ErrNameRequired = errors.New("category name is required")
	// ErrReservedName rejects the UI sentinel, which is never stored.
	ErrReservedName = errors.New(`"` + models.OthersCategory + `" is reserved`)
)

// Store reads and writes the categories collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store backed by db's "categories" collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("categories")}
}

// Create inserts a category. Uniqueness is enforced by the
// uniq_categories_name index.
func (s *Store) Create(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrNameRequired
	}
	if name == models.OthersCategory {
		return models.Category{}, ErrReservedName
	}

	cat := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, cat); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Category{}, ErrDuplicateCategory
		}
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return cat, nil
}

// List returns all categories ordered by name.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cur.Close(ctx)

	cats := []models.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}

// Names returns just the category names, in list order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	cats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}
