package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/iliyamo/house-listing-api/internal/model"
)

// HouseStore is the process-wide collection of house listings. It owns
// the backing slice and the id allocator outright; nothing else in the
// application holds a reference to either. Every operation copies
// records on the way out so callers can never mutate stored state
// behind the store's back.
//
// A single mutex serializes all operations. Mutations are therefore
// atomic with respect to concurrent requests: two concurrent creates
// can never share an id, and an update racing a delete observes either
// the state before or after the delete, never a torn record.
type HouseStore struct {
	mu     sync.Mutex    // guards houses and ids
	houses []model.House // listings in creation order
	ids    *idAllocator  // monotonically increasing id source
}

// NewHouseStore returns an empty store. State is never loaded from
// disk; a fresh process always starts with zero listings and the id
// counter at 1.
func NewHouseStore() *HouseStore {
	return &HouseStore{ids: newIDAllocator()}
}

// CreateHouse carries the caller-supplied fields for a new listing.
// Description and Status are optional and default when empty.
type CreateHouse struct {
	Title       string
	Price       model.Price
	Address     string
	Description string
	Status      string
}

// UpdateHouse carries a partial set of replacement fields. Empty
// strings and a zero price are treated as "not provided" and leave the
// stored value untouched (see Update).
type UpdateHouse struct {
	Title       string
	Price       model.Price
	Address     string
	Description string
	Status      string
}

// List returns every listing in creation order. The result is a copy;
// it never aliases the store's internal slice. Always succeeds and may
// be empty.
func (s *HouseStore) List() []model.House {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.House, len(s.houses))
	for i, h := range s.houses {
		out[i] = cloneHouse(h)
	}
	return out
}

// Get returns the listing with the given id, or ErrHouseNotFound.
func (s *HouseStore) Get(id uint64) (model.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.House{}, ErrHouseNotFound
	}
	return cloneHouse(s.houses[i]), nil
}

// Create validates the input, assigns a fresh id and creation
// timestamp, applies defaults and appends the new listing. Title,
// price and address are all required; a zero price counts as missing.
// The id allocator is only consulted after validation passes, so
// rejected payloads never consume an id.
func (s *HouseStore) Create(in CreateHouse) (model.House, error) {
	if in.Title == "" || in.Price == 0 || in.Address == "" {
		return model.House{}, fmt.Errorf("%w: title, price, and address are required", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = model.StatusAvailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	h := model.House{
		ID:          s.ids.take(),
		Title:       in.Title,
		Price:       in.Price,
		Address:     in.Address,
		Description: in.Description,
		Status:      status,
		Images:      []string{},
		CreatedAt:   time.Now().UTC(),
	}
	s.houses = append(s.houses, h)
	return cloneHouse(h), nil
}

// Update merges the provided fields into an existing listing and
// returns the result. A field only replaces the stored value when it
// is non-zero: an empty title, address, description or status and a
// price of 0 all retain the previous value. That means a legitimate
// empty description or zero price can never be set through Update;
// the behavior is kept deliberately, matching what clients already
// rely on. ID and CreatedAt are never touched.
func (s *HouseStore) Update(id uint64, in UpdateHouse) (model.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.House{}, ErrHouseNotFound
	}
	h := &s.houses[i]
	if in.Title != "" {
		h.Title = in.Title
	}
	if in.Price != 0 {
		h.Price = in.Price
	}
	if in.Address != "" {
		h.Address = in.Address
	}
	if in.Description != "" {
		h.Description = in.Description
	}
	if in.Status != "" {
		h.Status = in.Status
	}
	return cloneHouse(*h), nil
}

// Delete removes the listing with the given id. Removal is final: the
// id is never reused and there is no tombstone to recover from. A
// second delete of the same id reports ErrHouseNotFound.
func (s *HouseStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrHouseNotFound
	}
	s.houses = append(s.houses[:i], s.houses[i+1:]...)
	return nil
}

// AppendImages appends the given URLs to the end of the listing's
// image sequence, preserving their order, and returns the updated
// record. A nil slice is rejected with ErrValidation; an empty slice
// is a valid no-op append.
func (s *HouseStore) AppendImages(id uint64, urls []string) (model.House, error) {
	if urls == nil {
		return model.House{}, fmt.Errorf("%w: image URLs array is required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.House{}, ErrHouseNotFound
	}
	h := &s.houses[i]
	h.Images = append(h.Images, urls...)
	return cloneHouse(*h), nil
}

// RemoveImageAt removes the image at the given position, shifting
// later images left, and returns the updated record. Images have no
// stable identifier of their own, so the index must be valid at the
// moment the call is processed; an index outside [0, len) is rejected
// with ErrValidation.
func (s *HouseStore) RemoveImageAt(id uint64, index int) (model.House, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.House{}, ErrHouseNotFound
	}
	h := &s.houses[i]
	if index < 0 || index >= len(h.Images) {
		return model.House{}, fmt.Errorf("%w: invalid image index", ErrValidation)
	}
	h.Images = append(h.Images[:index], h.Images[index+1:]...)
	return cloneHouse(*h), nil
}

// indexOf returns the position of the listing with the given id, or -1.
// Callers must hold s.mu.
func (s *HouseStore) indexOf(id uint64) int {
	for i := range s.houses {
		if s.houses[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneHouse copies a record along with its image slice so the caller
// cannot alias store-owned memory.
func cloneHouse(h model.House) model.House {
	imgs := make([]string, len(h.Images))
	copy(imgs, h.Images)
	h.Images = imgs
	return h
}
