// Package queue defines message payloads exchanged over the message broker.
package queue

// Listing event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ListingEvent is published whenever a house listing is created,
// updated or deleted. It carries enough of the record for downstream
// consumers to log or notify without calling back into the API.
type ListingEvent struct {
	Action     string  `json:"action"`      // created | updated | deleted
	HouseID    uint64  `json:"house_id"`    // listing identifier
	Title      string  `json:"title"`       // listing headline at event time
	Price      float64 `json:"price"`       // asking price at event time
	Address    string  `json:"address"`     // street address at event time
	Status     string  `json:"status"`      // listing status at event time
	OccurredAt string  `json:"occurred_at"` // RFC 3339 UTC timestamp
}
