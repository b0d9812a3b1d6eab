package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a hex string into an ObjectID. Malformed ids report false;
// repositories treat them as ids that match no document.
func ParseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// ParseIDs converts hex strings into ObjectIDs, dropping malformed ones.
func ParseIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := ParseID(id); ok {
			oids = append(oids, oid)
		}
	}
	return oids
}
