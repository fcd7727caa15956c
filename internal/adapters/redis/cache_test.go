package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/justplus-adrian/Priority-Interview-main/internal/adapters/redis"
	"github.com/justplus-adrian/Priority-Interview-main/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	h := domain.Hotel{ID: 7, Name: "Grand", City: "Rome", Country: "Italy", StarRating: 5}
	if err := cache.Set(ctx, "hotels:all", []domain.Hotel{h}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got []domain.Hotel
	ok, err := cache.Get(ctx, "hotels:all", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(got) != 1 || got[0] != h {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCacheMissAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var dst domain.Hotel
	ok, err := cache.Get(ctx, "absent", &dst)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an absent key")
	}

	if err := cache.Set(ctx, "k", domain.Hotel{ID: 1}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if ok, _ := cache.Get(ctx, "k", &dst); ok {
		t.Fatal("expected a miss after Del")
	}
}
