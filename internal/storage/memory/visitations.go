package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// VisitationStore keeps visitations in insertion order behind a single
// mutex. Customer and hotel references are stored as given; existence checks
// belong to the command layer at insertion time.
type VisitationStore struct {
	mu    sync.Mutex
	now   clock
	items []domain.Visitation
}

func NewVisitationStore(seed []domain.Visitation, now func() time.Time) *VisitationStore {
	return &VisitationStore{now: orWallClock(now), items: snapshot(seed)}
}

func (s *VisitationStore) List() []domain.Visitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

func (s *VisitationStore) Get(id int) (domain.Visitation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.items {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Visitation{}, false
}

// Create assigns the next id, defaults a zero visit date to the store clock,
// and appends.
func (s *VisitationStore) Create(draft domain.Visitation) domain.Visitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = nextID(s.items, visitationID)
	if draft.VisitDate.IsZero() {
		draft.VisitDate = s.now()
	}
	s.items = append(s.items, draft)
	return draft
}

// Update overwrites the references and visit date of the record matching v.ID.
func (s *VisitationStore) Update(v domain.Visitation) (domain.Visitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == v.ID {
			s.items[i].CustomerID = v.CustomerID
			s.items[i].HotelID = v.HotelID
			s.items[i].VisitDate = v.VisitDate
			return s.items[i], nil
		}
	}
	return domain.Visitation{}, fmt.Errorf("visitation %d: %w", v.ID, domain.ErrNotFound)
}

func (s *VisitationStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.items, ok = removeByID(s.items, id, visitationID)
	return ok
}

func (s *VisitationStore) ByCustomer(customerID int) []domain.Visitation {
	return s.filter(func(v domain.Visitation) bool { return v.CustomerID == customerID })
}

func (s *VisitationStore) ByHotel(hotelID int) []domain.Visitation {
	return s.filter(func(v domain.Visitation) bool { return v.HotelID == hotelID })
}

// ByDateRange returns visitations with a visit date in [start, end]. An
// inverted range matches nothing; rejecting it is the caller's concern.
func (s *VisitationStore) ByDateRange(start, end time.Time) []domain.Visitation {
	return s.filter(func(v domain.Visitation) bool {
		return !v.VisitDate.Before(start) && !v.VisitDate.After(end)
	})
}

func (s *VisitationStore) filter(keep func(domain.Visitation) bool) []domain.Visitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Visitation
	for _, v := range s.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func visitationID(v domain.Visitation) int { return v.ID }
