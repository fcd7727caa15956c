package memory

import (
	"testing"

	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

func TestHotelStore_IDsContinueFromSeedMax(t *testing.T) {
	s := NewHotelStore([]domain.Hotel{
		{ID: 5, Name: "Grand", City: "Rome"},
		{ID: 9, Name: "Plaza", City: "Paris"},
	})
	h := s.Create(domain.Hotel{Name: "Astoria", City: "Vienna"})
	if h.ID != 10 {
		t.Errorf("id = %d, want 10", h.ID)
	}
}

func TestHotelStore_CRUD(t *testing.T) {
	s := NewHotelStore(nil)
	created := s.Create(domain.Hotel{Name: "Grand", Address: "Via Roma 1", City: "Rome", Country: "Italy", StarRating: 5})

	t.Run("get", func(t *testing.T) {
		got, ok := s.Get(created.ID)
		if !ok || got != created {
			t.Fatalf("Get = %+v, %v", got, ok)
		}
	})

	t.Run("update_all_but_id", func(t *testing.T) {
		updated, err := s.Update(domain.Hotel{ID: created.ID, Name: "Grand Palace", Address: "Via Roma 2", City: "Milan", Country: "Italy", StarRating: 4})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.ID != created.ID || updated.Name != "Grand Palace" || updated.City != "Milan" || updated.StarRating != 4 {
			t.Errorf("unexpected update result: %+v", updated)
		}
	})

	t.Run("update_absent", func(t *testing.T) {
		if _, err := s.Update(domain.Hotel{ID: 99}); !isNotFound(err) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if !s.Delete(created.ID) {
			t.Fatal("delete reported false")
		}
		if s.Delete(created.ID) {
			t.Error("second delete reported true")
		}
	})
}

func TestHotelStore_ListOrderAndSnapshot(t *testing.T) {
	s := NewHotelStore(nil)
	s.Create(domain.Hotel{Name: "A"})
	s.Create(domain.Hotel{Name: "B"})

	got := s.List()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("list order: %+v", got)
	}
	got[0].Name = "mutated"
	if fresh, _ := s.Get(1); fresh.Name != "A" {
		t.Errorf("store state leaked: %+v", fresh)
	}
}
