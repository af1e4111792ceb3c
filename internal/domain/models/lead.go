// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLink is one social-media profile attached to a lead.
type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// Lead is a business contact record.
//
// Category is free text. It usually matches a Category name or the UI
// sentinel "Others", but nothing enforces the link.
type Lead struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	BusinessName string             `bson:"business_name" json:"businessName"`
	Category     string             `bson:"category" json:"category"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Website      string             `bson:"website,omitempty" json:"website"`
	SocialMedia  []SocialLink       `bson:"social_media" json:"socialMedia"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
