// internal/app/store/leads/leadstore.go
package leadstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/leadsadmin/internal/app/system/inputval"
	"github.com/dalemusser/leadsadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no lead has the requested identifier.
	ErrNotFound = errors.New("lead not found")
	// ErrInvalidID is returned when an identifier is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid lead id")
)

// ValidationError reports input that failed the required-field rules.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(res *inputval.Result) *ValidationError {
	ve := &ValidationError{Message: res.All()}
	for _, fe := range res.Errors {
		ve.Fields = append(ve.Fields, fe.Field)
	}
	return ve
}

// Input carries the fields accepted when creating a lead.
type Input struct {
	BusinessName string              `json:"businessName" validate:"notblank" label:"Business name"`
	Category     string              `json:"category" validate:"notblank" label:"Category"`
	Email        string              `json:"email" validate:"notblank" label:"Email"`
	Phone        string              `json:"phone" validate:"notblank" label:"Phone"`
	Address      string              `json:"address" validate:"notblank" label:"Address"`
	Website      string              `json:"website"`
	SocialMedia  []models.SocialLink `json:"socialMedia"`
}

// Patch carries a partial update. Nil fields are left unchanged.
// A non-nil SocialMedia replaces the stored list.
type Patch struct {
	BusinessName *string              `json:"businessName" validate:"omitnil,notblank" label:"Business name"`
	Category     *string              `json:"category" validate:"omitnil,notblank" label:"Category"`
	Email        *string              `json:"email" validate:"omitnil,notblank" label:"Email"`
	Phone        *string              `json:"phone" validate:"omitnil,notblank" label:"Phone"`
	Address      *string              `json:"address" validate:"omitnil,notblank" label:"Address"`
	Website      *string              `json:"website"`
	SocialMedia  *[]models.SocialLink `json:"socialMedia"`
}

// Store reads and writes the leads collection.
type Store struct {
	c *mongo.Collection
}

// New returns a Store backed by db's "leads" collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("leads")}
}

// ParseID converts a hex identifier into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// CleanSocial trims social links and drops entries missing a platform or URL.
func CleanSocial(links []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		p := strings.TrimSpace(l.Platform)
		u := strings.TrimSpace(l.URL)
		if p == "" || u == "" {
			continue
		}
		out = append(out, models.SocialLink{Platform: p, URL: u})
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// Create validates in, then inserts a new lead with a fresh identifier and timestamps.
// Values are stored as sent apart from surrounding whitespace.
func (s *Store) Create(ctx context.Context, in Input) (models.Lead, error) {
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.Category = strings.TrimSpace(in.Category)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Website = strings.TrimSpace(in.Website)

	if res := inputval.Validate(in); res.HasErrors() {
		return models.Lead{}, validationError(res)
	}

	now := time.Now().UTC()
	lead := models.Lead{
		ID:           primitive.NewObjectID(),
		BusinessName: in.BusinessName,
		Category:     in.Category,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		Website:      in.Website,
		SocialMedia:  CleanSocial(in.SocialMedia),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, lead); err != nil {
		return models.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return lead, nil
}

// List returns every lead, newest first.
func (s *Store) List(ctx context.Context) ([]models.Lead, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := []models.Lead{}
	if err := cur.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	for i := range leads {
		if leads[i].SocialMedia == nil {
			leads[i].SocialMedia = []models.SocialLink{}
		}
	}
	return leads, nil
}

// GetByID returns the lead with the given identifier or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Lead, error) {
	var lead models.Lead
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Lead{}, ErrNotFound
	}
	if err != nil {
		return models.Lead{}, fmt.Errorf("find lead: %w", err)
	}
	if lead.SocialMedia == nil {
		lead.SocialMedia = []models.SocialLink{}
	}
	return lead, nil
}

// Update applies the non-nil fields of p and returns the lead as stored afterwards.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Lead, error) {
	p.BusinessName = trimPtr(p.BusinessName)
	p.Category = trimPtr(p.Category)
	p.Email = trimPtr(p.Email)
	p.Phone = trimPtr(p.Phone)
	p.Address = trimPtr(p.Address)
	p.Website = trimPtr(p.Website)

	if res := inputval.Validate(p); res.HasErrors() {
		return models.Lead{}, validationError(res)
	}

	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.BusinessName != nil {
		set["business_name"] = *p.BusinessName
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.Website != nil {
		set["website"] = *p.Website
	}
	if p.SocialMedia != nil {
		set["social_media"] = CleanSocial(*p.SocialMedia)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var lead models.Lead
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Lead{}, ErrNotFound
	}
	if err != nil {
		return models.Lead{}, fmt.Errorf("update lead: %w", err)
	}
	if lead.SocialMedia == nil {
		lead.SocialMedia = []models.SocialLink{}
	}
	return lead, nil
}

// Delete removes a lead by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored leads.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
