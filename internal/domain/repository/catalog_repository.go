package repository

import (
	"context"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/errors"
)

var (
	// ErrGameNotFound is returned when the catalog has no game with the requested id.
	ErrGameNotFound = errors.New("game not found")
	// ErrClientNotFound is returned when no client has the requested id.
	ErrClientNotFound = errors.New("client not found")
)

// CatalogRepository resolves game and client references. It is read-only:
// the catalog is managed elsewhere.
type CatalogRepository interface {
	FindGameByID(ctx context.Context, id int64) (*entity.Game, error)
	FindClientByID(ctx context.Context, id int64) (*entity.Client, error)
}
