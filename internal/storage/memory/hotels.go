package memory

import (
	"fmt"
	"sync"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// HotelStore keeps hotels in insertion order behind a single mutex. It has
// no time-dependent behavior, so no clock.
type HotelStore struct {
	mu    sync.Mutex
	items []domain.Hotel
}

func NewHotelStore(seed []domain.Hotel) *HotelStore {
	return &HotelStore{items: snapshot(seed)}
}

func (s *HotelStore) List() []domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

func (s *HotelStore) Get(id int) (domain.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.items {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hotel{}, false
}

func (s *HotelStore) Create(draft domain.Hotel) domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = nextID(s.items, hotelID)
	s.items = append(s.items, draft)
	return draft
}

// Update overwrites every field except the identifier.
func (s *HotelStore) Update(h domain.Hotel) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == h.ID {
			s.items[i].Name = h.Name
			s.items[i].Address = h.Address
			s.items[i].City = h.City
			s.items[i].Country = h.Country
			s.items[i].StarRating = h.StarRating
			return s.items[i], nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("hotel %d: %w", h.ID, domain.ErrNotFound)
}

func (s *HotelStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.items, ok = removeByID(s.items, id, hotelID)
	return ok
}

func hotelID(h domain.Hotel) int { return h.ID }
