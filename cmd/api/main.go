package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/justplus-adrian/Priority-Interview-main/internal/adapters/http_server"
	"github.com/justplus-adrian/Priority-Interview-main/internal/adapters/observability"
	redisad "github.com/justplus-adrian/Priority-Interview-main/internal/adapters/redis"
	"github.com/justplus-adrian/Priority-Interview-main/internal/app"
	"github.com/justplus-adrian/Priority-Interview-main/internal/shared"
	"github.com/justplus-adrian/Priority-Interview-main/internal/storage/memory"
	"github.com/justplus-adrian/Priority-Interview-main/internal/storage/seed"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// one-shot bootstrap; missing or malformed files mean empty stores
	data := seed.Load(context.Background(), cfg.DataDir)
	observability.ObserveSeed("customers", len(data.Customers))
	observability.ObserveSeed("hotels", len(data.Hotels))
	observability.ObserveSeed("visitations", len(data.Visitations))

	// the three stores own all mutable state for the process lifetime
	customers := memory.NewCustomerStore(data.Customers, nil)
	hotels := memory.NewHotelStore(data.Hotels)
	visits := memory.NewVisitationStore(data.Visitations, nil)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(customers, hotels, visits, cache, cfg.CacheTTL)
	c := app.NewCommandService(customers, hotels, visits, cache)

	// http
	srv := server.New(cfg.CORSOrigin, cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, C: c})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
