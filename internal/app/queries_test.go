package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justplus-adrian/Priority-Interview-main/internal/app"
	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
	"github.com/justplus-adrian/Priority-Interview-main/internal/storage/memory"
)

// ---- fakes ----

// fakeCache is a type-switching in-process cache, enough to prove the
// cache-aside and invalidation paths without redis.
type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Customer:
		*d = v.([]domain.Customer)
	case *[]domain.Hotel:
		*d = v.([]domain.Hotel)
	case *[]domain.VisitationDetail:
		*d = v.([]domain.VisitationDetail)
	case *domain.VisitationDetail:
		*d = v.(domain.VisitationDetail)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newServices(cache domain.Cache) (*app.QueryService, *app.CommandService, *memory.CustomerStore, *memory.HotelStore, *memory.VisitationStore) {
	customers := memory.NewCustomerStore(nil, nil)
	hotels := memory.NewHotelStore(nil)
	visits := memory.NewVisitationStore(nil, nil)
	q := app.NewQueryService(customers, hotels, visits, cache, 10*time.Minute)
	c := app.NewCommandService(customers, hotels, visits, cache)
	return q, c, customers, hotels, visits
}

// ---- tests ----

func TestDetails_DanglingReferences(t *testing.T) {
	visits := []domain.Visitation{
		{ID: 1, CustomerID: 1, HotelID: 1, VisitDate: date(2024, time.March, 1)},
		{ID: 2, CustomerID: 77, HotelID: 88, VisitDate: date(2024, time.April, 1)},
	}
	customers := []domain.Customer{{ID: 1, Name: "Ana"}}
	hotels := []domain.Hotel{{ID: 1, Name: "Grand"}}

	out := app.Details(visits, customers, hotels)
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].CustomerName != "Ana" || out[0].HotelName != "Grand" {
		t.Errorf("resolved row: %+v", out[0])
	}
	if out[1].CustomerName != "Unknown Customer" || out[1].HotelName != "Unknown Hotel" {
		t.Errorf("dangling row: %+v", out[1])
	}
	if out[1].ID != 2 || out[1].CustomerID != 77 || out[1].HotelID != 88 || !out[1].VisitDate.Equal(visits[1].VisitDate) {
		t.Errorf("dangling row fields changed: %+v", out[1])
	}
}

func TestQueryService_VisitationDetails_CacheAside(t *testing.T) {
	cache := &fakeCache{}
	q, _, customers, hotels, visits := newServices(cache)
	customers.Create(domain.Customer{Name: "Ana", Email: "a@x.com"})
	hotels.Create(domain.Hotel{Name: "Grand"})
	visits.Create(domain.Visitation{CustomerID: 1, HotelID: 1, VisitDate: date(2024, time.March, 1)})

	ctx := context.Background()
	first := q.VisitationDetails(ctx)
	if len(first) != 1 || first[0].CustomerName != "Ana" {
		t.Fatalf("first read: %+v", first)
	}

	// Mutate the store directly; the second read must come from the cache.
	visits.Create(domain.Visitation{CustomerID: 1, HotelID: 1})
	second := q.VisitationDetails(ctx)
	if len(second) != 1 {
		t.Fatalf("expected cached single row, got %+v", second)
	}
}

func TestQueryService_LoyalCustomers(t *testing.T) {
	q, _, customers, _, _ := newServices(nil)
	customers.Create(domain.Customer{Name: "Loyal", Email: "l@x.com", RegistrationDate: date(2024, time.January, 1), TotalPurchases: 11})
	customers.Create(domain.Customer{Name: "Casual", Email: "c@x.com", RegistrationDate: date(2024, time.January, 1), TotalPurchases: 3})

	got := q.LoyalCustomers(context.Background(), date(2024, time.June, 1))
	if len(got) != 1 || got[0].Name != "Loyal" {
		t.Fatalf("LoyalCustomers = %+v", got)
	}
	if got := q.LoyalCustomers(context.Background(), date(2023, time.December, 1)); len(got) != 0 {
		t.Fatalf("too-early as-of should exclude all, got %+v", got)
	}
}

func TestQueryService_VisitationsByCustomer_UnknownCustomer(t *testing.T) {
	q, _, _, _, _ := newServices(nil)
	_, err := q.VisitationsByCustomer(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestQueryService_VisitationsByDateRange_Inverted(t *testing.T) {
	q, _, _, _, _ := newServices(nil)
	_, err := q.VisitationsByDateRange(context.Background(), date(2024, time.June, 1), date(2024, time.January, 1))
	var ve *app.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestQueryService_EndToEndScenario(t *testing.T) {
	q, c, _, _, _ := newServices(&fakeCache{})
	ctx := context.Background()

	h, err := c.AddHotel(ctx, domain.Hotel{Name: "Grand", City: "Rome"})
	if err != nil {
		t.Fatalf("AddHotel: %v", err)
	}
	cust, err := c.AddCustomer(ctx, domain.Customer{Name: "Ana", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("AddCustomer: %v", err)
	}
	created, err := c.AddVisitation(ctx, domain.Visitation{
		CustomerID: cust.ID, HotelID: h.ID, VisitDate: date(2024, time.March, 1),
	})
	if err != nil {
		t.Fatalf("AddVisitation: %v", err)
	}
	if created.CustomerName != "Ana" || created.HotelName != "Grand" {
		t.Fatalf("created detail: %+v", created)
	}

	got, err := q.VisitationsByCustomer(ctx, cust.ID)
	if err != nil {
		t.Fatalf("VisitationsByCustomer: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID || got[0].CustomerName != "Ana" || got[0].HotelName != "Grand" {
		t.Fatalf("VisitationsByCustomer = %+v", got)
	}
	if !got[0].VisitDate.Equal(date(2024, time.March, 1)) {
		t.Fatalf("visit date = %v", got[0].VisitDate)
	}
}
