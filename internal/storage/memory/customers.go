package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// CustomerStore keeps customers in insertion order behind a single mutex.
type CustomerStore struct {
	mu    sync.Mutex
	now   clock
	items []domain.Customer
}

// NewCustomerStore seeds the store with the given records as-is (ids
// included) and uses now for timestamp defaulting; nil means wall clock.
func NewCustomerStore(seed []domain.Customer, now func() time.Time) *CustomerStore {
	return &CustomerStore{now: orWallClock(now), items: snapshot(seed)}
}

func (s *CustomerStore) List() []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

func (s *CustomerStore) Get(id int) (domain.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// Create assigns the next id, defaults a zero registration date to the store
// clock, and appends. Field validation is the caller's job; Create itself
// never fails.
func (s *CustomerStore) Create(draft domain.Customer) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft.ID = nextID(s.items, customerID)
	if draft.RegistrationDate.IsZero() {
		draft.RegistrationDate = s.now()
	}
	s.items = append(s.items, draft)
	return draft
}

// Update overwrites name, email and total purchases of the record matching
// c.ID. Identifier and registration date are immutable.
func (s *CustomerStore) Update(c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i].Name = c.Name
			s.items[i].Email = c.Email
			s.items[i].TotalPurchases = c.TotalPurchases
			return s.items[i], nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer %d: %w", c.ID, domain.ErrNotFound)
}

func (s *CustomerStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	s.items, ok = removeByID(s.items, id, customerID)
	return ok
}

// Loyal returns customers registered on or before asOf whose purchase count
// exceeds the loyalty threshold, in storage order. A zero asOf defaults to
// the store clock.
func (s *CustomerStore) Loyal(asOf time.Time) []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if asOf.IsZero() {
		asOf = s.now()
	}
	var out []domain.Customer
	for _, c := range s.items {
		if !c.RegistrationDate.After(asOf) && c.TotalPurchases > loyaltyThreshold {
			out = append(out, c)
		}
	}
	return out
}

func customerID(c domain.Customer) int { return c.ID }
