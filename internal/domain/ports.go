package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Update/Delete paths targeting an id no store
// holds. Lookups report absence through their bool return instead.
var ErrNotFound = errors.New("not found")

// CustomerRepository is the store contract for customers. Lists and query
// results are snapshot copies, independent of later mutations.
type CustomerRepository interface {
	List() []Customer
	Get(id int) (Customer, bool)
	Create(draft Customer) Customer
	Update(c Customer) (Customer, error)
	Delete(id int) bool

	// Loyal returns customers registered on or before asOf with more than
	// the loyalty threshold of purchases. A zero asOf means "now".
	Loyal(asOf time.Time) []Customer
}

type HotelRepository interface {
	List() []Hotel
	Get(id int) (Hotel, bool)
	Create(draft Hotel) Hotel
	Update(h Hotel) (Hotel, error)
	Delete(id int) bool
}

type VisitationRepository interface {
	List() []Visitation
	Get(id int) (Visitation, bool)
	Create(draft Visitation) Visitation
	Update(v Visitation) (Visitation, error)
	Delete(id int) bool

	ByCustomer(customerID int) []Visitation
	ByHotel(hotelID int) []Visitation
	// ByDateRange filters on the closed interval [start, end]. An inverted
	// range yields an empty result, never an error.
	ByDateRange(start, end time.Time) []Visitation
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
