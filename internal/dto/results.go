package dto

// Raw store operation results, returned verbatim as response bodies.
// The web client inspects insertedId / deletedCount directly, so the
// field names follow the store driver's wire format.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
