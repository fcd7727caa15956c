// Package seed bootstraps the stores from the static JSON documents shipped
// with the service. Loading is one-shot: it happens once at startup and is
// never reattempted, and a missing or malformed file silently yields an
// empty collection for that entity.
package seed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

// Each document wraps its records under a single key. Field matching is
// case-insensitive (encoding/json's default), so the shipped PascalCase
// files decode into the camelCase-tagged entities.
type customersDoc struct {
	Customers []domain.Customer
}

type hotelsDoc struct {
	Hotels []domain.Hotel
}

type visitationsDoc struct {
	Visitations []domain.Visitation
}

// Data is the initial snapshot for the three stores.
type Data struct {
	Customers   []domain.Customer
	Hotels      []domain.Hotel
	Visitations []domain.Visitation
}

// Load reads customers.json, hotels.json and visitations.json under dir,
// one goroutine per file. Load never fails; the worst case is three empty
// collections.
func Load(ctx context.Context, dir string) Data {
	var d Data
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc := loadDoc[customersDoc](filepath.Join(dir, "customers.json"))
		d.Customers = doc.Customers
		return nil
	})
	g.Go(func() error {
		doc := loadDoc[hotelsDoc](filepath.Join(dir, "hotels.json"))
		d.Hotels = doc.Hotels
		return nil
	})
	g.Go(func() error {
		doc := loadDoc[visitationsDoc](filepath.Join(dir, "visitations.json"))
		d.Visitations = doc.Visitations
		return nil
	})
	_ = g.Wait()

	log.Info().
		Str("dir", dir).
		Int("customers", len(d.Customers)).
		Int("hotels", len(d.Hotels)).
		Int("visitations", len(d.Visitations)).
		Msg("seed data loaded")
	return d
}

func loadDoc[T any](path string) T {
	var doc T
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("seed file unreadable, starting empty")
		return doc
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("seed file malformed, starting empty")
		var zero T
		return zero
	}
	return doc
}
