package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// parseID converts a hex id. A malformed id cannot match any document, so
// callers treat ok == false as "not found".
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// windowOptions orders by descending _id (newest first) and applies the
// page window.
func windowOptions(w domain.PageWindow) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(w.Skip).
		SetLimit(w.Limit)
}

// byField builds an equality filter on an ObjectID field. ok is false for a
// malformed id, which can match no document.
func byField(field, id string) (bson.M, bool) {
	oid, ok := parseID(id)
	if !ok {
		return nil, false
	}
	return bson.M{field: oid}, true
}
