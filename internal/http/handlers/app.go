package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"imagefuse/internal/merge"
)

// Merger is the orchestration surface the handlers depend on.
type Merger interface {
	Merge(ctx context.Context, req merge.Request) (*merge.Result, error)
}

type App struct {
	Merger         Merger
	Catalog        merge.ModelCatalog
	MaxUploadBytes int64
	Log            zerolog.Logger
}

func NewApp(merger Merger, catalog merge.ModelCatalog, maxUploadBytes int64, log zerolog.Logger) *App {
	return &App{
		Merger:         merger,
		Catalog:        catalog,
		MaxUploadBytes: maxUploadBytes,
		Log:            log,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
