package memory

import (
	"context"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
)

// catalogRepository implements repository.CatalogRepository in memory.
type catalogRepository struct {
	access accessor
}

func (repo *catalogRepository) FindGameByID(ctx context.Context, id int64) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Game
	err := repo.access(false, func(s *state) error {
		game, ok := s.games[id]
		if !ok {
			return repository.ErrGameNotFound
		}
		g := *game
		found = &g

		return nil
	})

	return found, err
}

func (repo *catalogRepository) FindClientByID(ctx context.Context, id int64) (*entity.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *entity.Client
	err := repo.access(false, func(s *state) error {
		client, ok := s.clients[id]
		if !ok {
			return repository.ErrClientNotFound
		}
		c := *client
		found = &c

		return nil
	})

	return found, err
}

// PutGame adds or replaces a catalog game.
func (st *Store) PutGame(game entity.Game) {
	_ = st.access(true, func(s *state) error {
		s.games[game.ID] = &game

		return nil
	})
}

// PutClient adds or replaces a client.
func (st *Store) PutClient(client entity.Client) {
	_ = st.access(true, func(s *state) error {
		s.clients[client.ID] = &client

		return nil
	})
}
