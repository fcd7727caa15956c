package app

import (
	"context"
	"fmt"
	"time"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// Cache keys for the derived read models. Writes in the command service
// invalidate them; plain entity reads go straight to the stores.
const (
	keyHotels            = "hotels:all"
	keyVisitationDetails = "visitations:details"
)

func keyVisitationDetail(id int) string { return fmt.Sprintf("visitation:detail:%d", id) }

func keyLoyal(asOf time.Time) string {
	return "customers:loyal:" + asOf.UTC().Format(time.RFC3339)
}

// QueryService is the read side: plain lookups pass through to the stores,
// derived views (joins, the hotel list, loyalty snapshots) are cache-aside.
// Cache failures are treated as misses and never surfaced.
type QueryService struct {
	customers domain.CustomerRepository
	hotels    domain.HotelRepository
	visits    domain.VisitationRepository
	cache     domain.Cache
	cacheTTL  time.Duration
}

func NewQueryService(c domain.CustomerRepository, h domain.HotelRepository, v domain.VisitationRepository, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{customers: c, hotels: h, visits: v, cache: cache, cacheTTL: ttl}
}

func (s *QueryService) Customers(ctx context.Context) []domain.Customer {
	return s.customers.List()
}

func (s *QueryService) Customer(ctx context.Context, id int) (domain.Customer, bool) {
	return s.customers.Get(id)
}

// LoyalCustomers snapshots the loyalty query for an explicit as-of date.
// A zero asOf means "now" and is never cached: the key would change on
// every call.
func (s *QueryService) LoyalCustomers(ctx context.Context, asOf time.Time) []domain.Customer {
	if asOf.IsZero() || s.cache == nil {
		return s.customers.Loyal(asOf)
	}
	key := keyLoyal(asOf)
	var out []domain.Customer
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	out = s.customers.Loyal(asOf)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

func (s *QueryService) Hotels(ctx context.Context) []domain.Hotel {
	var out []domain.Hotel
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, keyHotels, &out); ok {
			return out
		}
	}
	out = s.hotels.List()
	if s.cache != nil {
		_ = s.cache.Set(ctx, keyHotels, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

func (s *QueryService) Hotel(ctx context.Context, id int) (domain.Hotel, bool) {
	return s.hotels.Get(id)
}

// VisitationDetails returns every visitation joined with customer and hotel
// names, in storage order.
func (s *QueryService) VisitationDetails(ctx context.Context) []domain.VisitationDetail {
	var out []domain.VisitationDetail
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, keyVisitationDetails, &out); ok {
			return out
		}
	}
	out = Details(s.visits.List(), s.customers.List(), s.hotels.List())
	if s.cache != nil {
		_ = s.cache.Set(ctx, keyVisitationDetails, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

// VisitationDetail resolves a single visitation. The bool reports whether
// the visitation itself exists; dangling references inside it fall back to
// the unknown display names.
func (s *QueryService) VisitationDetail(ctx context.Context, id int) (domain.VisitationDetail, bool) {
	key := keyVisitationDetail(id)
	if s.cache != nil {
		var cached domain.VisitationDetail
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, true
		}
	}
	v, ok := s.visits.Get(id)
	if !ok {
		return domain.VisitationDetail{}, false
	}
	d := s.detailOf(v)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, d, int(s.cacheTTL.Seconds()))
	}
	return d, true
}

// VisitationsByCustomer joins a customer's visitations. The customer must
// exist; hotels are resolved leniently.
func (s *QueryService) VisitationsByCustomer(ctx context.Context, customerID int) ([]domain.VisitationDetail, error) {
	if _, ok := s.customers.Get(customerID); !ok {
		return nil, fmt.Errorf("customer %d: %w", customerID, domain.ErrNotFound)
	}
	return Details(s.visits.ByCustomer(customerID), s.customers.List(), s.hotels.List()), nil
}

// VisitationsByHotel joins a hotel's visitations. The hotel must exist;
// customers are resolved leniently.
func (s *QueryService) VisitationsByHotel(ctx context.Context, hotelID int) ([]domain.VisitationDetail, error) {
	if _, ok := s.hotels.Get(hotelID); !ok {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, domain.ErrNotFound)
	}
	return Details(s.visits.ByHotel(hotelID), s.customers.List(), s.hotels.List()), nil
}

// VisitationsByDateRange joins visitations in the closed interval
// [start, end]. An inverted range is a caller mistake and rejected here,
// before the store is consulted.
func (s *QueryService) VisitationsByDateRange(ctx context.Context, start, end time.Time) ([]domain.VisitationDetail, error) {
	if start.After(end) {
		return nil, validationf("start date cannot be greater than end date")
	}
	return Details(s.visits.ByDateRange(start, end), s.customers.List(), s.hotels.List()), nil
}

func (s *QueryService) detailOf(v domain.Visitation) domain.VisitationDetail {
	d := domain.VisitationDetail{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		CustomerName: unknownCustomer,
		HotelID:      v.HotelID,
		HotelName:    unknownHotel,
		VisitDate:    v.VisitDate,
	}
	if c, ok := s.customers.Get(v.CustomerID); ok {
		d.CustomerName = c.Name
	}
	if h, ok := s.hotels.Get(v.HotelID); ok {
		d.HotelName = h.Name
	}
	return d
}
