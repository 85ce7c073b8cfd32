package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// House represents a single real-estate listing. Listings live only in
// process memory for the lifetime of the server; there is no backing
// table, and all instances are owned exclusively by the house store.
//
// Fields:
//  ID          – unique identifier, assigned once at creation.
//  Title       – listing headline, required.
//  Price       – asking price, coerced from string or number input.
//  Address     – street address, required.
//  Description – free-form text, defaults to empty.
//  Status      – listing state, defaults to "available"; not an enum.
//  Images      – ordered image URLs, appended in insertion order.
//  CreatedAt   – creation timestamp, immutable after creation.
type House struct {
	ID          uint64    `json:"id"`          // unique listing id
	Title       string    `json:"title"`       // listing headline
	Price       Price     `json:"price"`       // asking price
	Address     string    `json:"address"`     // street address
	Description string    `json:"description"` // free-form description
	Status      string    `json:"status"`      // e.g. "available", "sold"
	Images      []string  `json:"images"`      // ordered image URLs
	CreatedAt   time.Time `json:"createdAt"`   // set once at creation
}

// StatusAvailable is the default status assigned to new listings.
const StatusAvailable = "available"

// Price is a numeric value that tolerates loose client input: JSON
// numbers and numeric strings both decode into it, so `"250000"` and
// `250000` are equivalent on the wire. It marshals back as a plain
// JSON number.
type Price float64

// UnmarshalJSON accepts either a JSON number or a quoted numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	// Try the string form first; fall through to a bare number.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}
