package postgres

import (
	"context"
	"time"

	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"
	"ludoteca/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindGameByID retrieves a game by its ID.
func (repo *catalogRepository) FindGameByID(ctx context.Context, id int64) (*entity.Game, error) {
	var gameM model.GameModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find game by ID")
	}

	return toGameDomain(&gameM), nil
}

// FindClientByID retrieves a client by its ID.
func (repo *catalogRepository) FindClientByID(ctx context.Context, id int64) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// --- Mappers ---

func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	return &entity.Game{
		ID:           data.ID,
		Title:        data.Title,
		Age:          data.Age,
		CategoryName: data.CategoryName,
		AuthorName:   data.AuthorName,
	}
}

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toTime(date datatypes.Date) time.Time {
	return time.Time(date)
}
