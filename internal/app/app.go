package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AniD-z/PersonalWeb/internal/cache"
	"github.com/AniD-z/PersonalWeb/internal/config"
	"github.com/AniD-z/PersonalWeb/internal/service"
	"github.com/AniD-z/PersonalWeb/internal/sheets"
	"github.com/AniD-z/PersonalWeb/internal/transport/http"
)

type Application struct {
	Config  *config.Config
	Cache   *cache.Cache
	Content *service.ContentService
	Router  http.Router

	stopSweep chan struct{}
}

func Initialize() (*Application, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	store, err := sheets.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	c := cache.New(time.Duration(cfg.CacheTTLSec) * time.Second)
	svc := service.NewContentService(store, c, slog.Default())

	app := &Application{
		Config:  cfg,
		Cache:   c,
		Content: svc,
		Router:  http.NewRouter(cfg, svc),
	}

	if cfg.CacheSweepSec > 0 {
		app.stopSweep = make(chan struct{})
		go app.sweep(time.Duration(cfg.CacheSweepSec) * time.Second)
	}

	return app, nil
}

// sweep periodically evicts expired cache entries. Correctness never
// depends on it; Get self-expires. It only bounds memory for keys that
// stop being read.
func (a *Application) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := a.Cache.Cleanup(); n > 0 {
				slog.Debug("cache sweep", "evicted", n)
			}
		case <-a.stopSweep:
			return
		}
	}
}

func (a *Application) Close() {
	if a.stopSweep != nil {
		close(a.stopSweep)
		a.stopSweep = nil
	}
}
