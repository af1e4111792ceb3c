// internal/app/system/inputval/validators.go
package inputval

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValidObjectID reports whether s (after trimming) is a 24-character hex ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
