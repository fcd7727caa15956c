package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	// PascalCase keys, as the shipped files use; decoding is case-insensitive.
	write(t, dir, "customers.json", `{"Customers": [
		{"Id": 1, "Name": "Ana", "Email": "a@x.com", "RegistrationDate": "2024-01-01T00:00:00Z", "TotalPurchases": 11}
	]}`)
	write(t, dir, "hotels.json", `{"Hotels": [
		{"Id": 1, "Name": "Grand", "Address": "Via Roma 1", "City": "Rome", "Country": "Italy", "StarRating": 5}
	]}`)
	write(t, dir, "visitations.json", `{"Visitations": [
		{"Id": 1, "CustomerId": 1, "HotelId": 1, "VisitDate": "2024-03-01T00:00:00Z"}
	]}`)

	d := Load(context.Background(), dir)
	if len(d.Customers) != 1 || d.Customers[0].Name != "Ana" || d.Customers[0].TotalPurchases != 11 {
		t.Fatalf("customers: %+v", d.Customers)
	}
	if len(d.Hotels) != 1 || d.Hotels[0].Name != "Grand" || d.Hotels[0].StarRating != 5 {
		t.Fatalf("hotels: %+v", d.Hotels)
	}
	if len(d.Visitations) != 1 || d.Visitations[0].CustomerID != 1 || d.Visitations[0].HotelID != 1 {
		t.Fatalf("visitations: %+v", d.Visitations)
	}
}

func TestLoad_MissingDirIsEmpty(t *testing.T) {
	d := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if len(d.Customers) != 0 || len(d.Hotels) != 0 || len(d.Visitations) != 0 {
		t.Fatalf("expected all empty, got %+v", d)
	}
}

func TestLoad_MalformedFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "customers.json", `{"Customers": [not json`)
	write(t, dir, "hotels.json", `{"Hotels": []}`)

	d := Load(context.Background(), dir)
	if len(d.Customers) != 0 {
		t.Fatalf("malformed customers should load empty, got %+v", d.Customers)
	}
	if len(d.Hotels) != 0 {
		t.Fatalf("empty hotels document should stay empty, got %+v", d.Hotels)
	}
	if len(d.Visitations) != 0 {
		t.Fatalf("missing visitations should load empty, got %+v", d.Visitations)
	}
}
