// internal/domain/models/category.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OthersCategory is the UI label for "a category not in the list yet".
// It is never stored as a Category.
const OthersCategory = "Others"

// Category is a label in the controlled vocabulary offered to leads.
// Names are unique (exact, case-sensitive match).
type Category struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
