package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// ValidationError marks input the caller can fix. Handlers map it to a bad
// request; everything behind it is untouched.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// CommandService is the write side. It owns all input validation (the
// stores trust well-formed input) and evicts the derived-view cache keys a
// write makes stale.
type CommandService struct {
	customers domain.CustomerRepository
	hotels    domain.HotelRepository
	visits    domain.VisitationRepository
	cache     domain.Cache
}

func NewCommandService(c domain.CustomerRepository, h domain.HotelRepository, v domain.VisitationRepository, cache domain.Cache) *CommandService {
	return &CommandService{customers: c, hotels: h, visits: v, cache: cache}
}

// ---- customers ----

// AddCustomer creates a customer registered now with zero purchases,
// whatever the draft carried for those fields.
func (s *CommandService) AddCustomer(ctx context.Context, draft domain.Customer) (domain.Customer, error) {
	if err := validateCustomer(draft); err != nil {
		return domain.Customer{}, err
	}
	draft.ID = 0
	draft.RegistrationDate = time.Time{}
	draft.TotalPurchases = 0
	c := s.customers.Create(draft)
	s.invalidateCustomerViews(ctx, c.ID)
	return c, nil
}

// RegisterCustomer is AddCustomer with a caller-chosen registration date;
// a zero date still defaults to now in the store.
func (s *CommandService) RegisterCustomer(ctx context.Context, draft domain.Customer) (domain.Customer, error) {
	if err := validateCustomer(draft); err != nil {
		return domain.Customer{}, err
	}
	draft.ID = 0
	draft.TotalPurchases = 0
	c := s.customers.Create(draft)
	s.invalidateCustomerViews(ctx, c.ID)
	return c, nil
}

func (s *CommandService) UpdateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return domain.Customer{}, err
	}
	updated, err := s.customers.Update(c)
	if err != nil {
		return domain.Customer{}, err
	}
	s.invalidateCustomerViews(ctx, updated.ID)
	return updated, nil
}

func (s *CommandService) DeleteCustomer(ctx context.Context, id int) error {
	if !s.customers.Delete(id) {
		return fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
	}
	s.invalidateCustomerViews(ctx, id)
	return nil
}

// ---- hotels ----

func (s *CommandService) AddHotel(ctx context.Context, draft domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(draft); err != nil {
		return domain.Hotel{}, err
	}
	draft.ID = 0
	h := s.hotels.Create(draft)
	s.invalidateHotelViews(ctx, h.ID)
	return h, nil
}

func (s *CommandService) UpdateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	if err := validateHotel(h); err != nil {
		return domain.Hotel{}, err
	}
	updated, err := s.hotels.Update(h)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidateHotelViews(ctx, updated.ID)
	return updated, nil
}

func (s *CommandService) DeleteHotel(ctx context.Context, id int) error {
	if !s.hotels.Delete(id) {
		return fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
	}
	s.invalidateHotelViews(ctx, id)
	return nil
}

// ---- visitations ----

// AddVisitation checks both references exist, then creates the record and
// returns its joined detail. This is the only place referential integrity
// is checked; later deletes may still leave the reference dangling.
func (s *CommandService) AddVisitation(ctx context.Context, draft domain.Visitation) (domain.VisitationDetail, error) {
	customer, ok := s.customers.Get(draft.CustomerID)
	if !ok {
		return domain.VisitationDetail{}, validationf("customer with id %d not found", draft.CustomerID)
	}
	hotel, ok := s.hotels.Get(draft.HotelID)
	if !ok {
		return domain.VisitationDetail{}, validationf("hotel with id %d not found", draft.HotelID)
	}
	draft.ID = 0
	v := s.visits.Create(draft)
	s.invalidateVisitationViews(ctx, v.ID)
	return domain.VisitationDetail{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CustomerName: customer.Name,
		HotelID:      v.HotelID,
		HotelName:    hotel.Name,
		VisitDate:    v.VisitDate,
	}, nil
}

func (s *CommandService) UpdateVisitation(ctx context.Context, v domain.Visitation) (domain.Visitation, error) {
	updated, err := s.visits.Update(v)
	if err != nil {
		return domain.Visitation{}, err
	}
	s.invalidateVisitationViews(ctx, v.ID)
	return updated, nil
}

func (s *CommandService) DeleteVisitation(ctx context.Context, id int) error {
	if !s.visits.Delete(id) {
		return fmt.Errorf("visitation %d: %w", id, domain.ErrNotFound)
	}
	s.invalidateVisitationViews(ctx, id)
	return nil
}

// ---- validation ----

func validateCustomer(c domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" {
		return validationf("name and email are required")
	}
	return nil
}

func validateHotel(h domain.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return validationf("hotel name is required")
	}
	return nil
}

// ---- cache eviction ----

// Customer names are embedded in the joined views, so a customer write
// stales the detail list plus the per-row details of that customer's
// visitations. Loyalty snapshots are left to their TTL: the as-of date
// makes the key space unbounded.
func (s *CommandService) invalidateCustomerViews(ctx context.Context, customerID int) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, keyVisitationDetails)
	for _, v := range s.visits.ByCustomer(customerID) {
		_ = s.cache.Del(ctx, keyVisitationDetail(v.ID))
	}
}

func (s *CommandService) invalidateHotelViews(ctx context.Context, hotelID int) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, keyHotels)
	_ = s.cache.Del(ctx, keyVisitationDetails)
	for _, v := range s.visits.ByHotel(hotelID) {
		_ = s.cache.Del(ctx, keyVisitationDetail(v.ID))
	}
}

func (s *CommandService) invalidateVisitationViews(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, keyVisitationDetails)
	_ = s.cache.Del(ctx, keyVisitationDetail(id))
}
