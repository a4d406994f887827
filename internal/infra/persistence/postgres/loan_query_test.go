package postgres

import (
	"testing"

	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpg.New(gormpg.Config{
		DSN: "host=localhost user=ludoteca dbname=ludoteca sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func toSQL(db *gorm.DB, q *loanQuery) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		tx = tx.Model(&model.LoanModel{})
		for _, join := range q.joins {
			tx = tx.Joins(join)
		}
		if len(q.where) > 0 {
			tx = tx.Clauses(clause.Where{Exprs: q.where})
		}

		var loans []*model.LoanModel

		return tx.Select("loans.*").Clauses(clause.OrderBy{Columns: q.order}).Find(&loans)
	})
}

func TestBuildLoanQuery_FiltersByGameClientAndDate(t *testing.T) {
	gameID, clientID := int64(3), int64(7)
	date := entity.NewDate(2024, 1, 5)

	pred, err := criteria.Compose(
		criteria.Eq("game.id", criteria.Optional(&gameID)),
		criteria.Eq("client.id", criteria.Optional(&clientID)),
		criteria.Lte("startDate", criteria.Optional(&date)),
		criteria.Gte("endDate", criteria.Optional(&date)),
	)
	require.NoError(t, err)

	q, err := buildLoanQuery(pred, nil)
	require.NoError(t, err)
	assert.Empty(t, q.joins)

	sql := toSQL(newDryRunDB(t), q)

	assert.Contains(t, sql, `"loans"."game_id" = 3`)
	assert.Contains(t, sql, `"loans"."client_id" = 7`)
	assert.Contains(t, sql, `"loans"."start_date" <= '2024-01-05'`)
	assert.Contains(t, sql, `"loans"."end_date" >= '2024-01-05'`)
	assert.Contains(t, sql, `ORDER BY "loans"."id"`)
}

func TestBuildLoanQuery_UniversalPredicate(t *testing.T) {
	pred, err := criteria.Compose(criteria.Eq("game.id", criteria.Optional[int64](nil)))
	require.NoError(t, err)

	q, err := buildLoanQuery(pred, nil)
	require.NoError(t, err)

	assert.Empty(t, q.where)
	assert.NotContains(t, toSQL(newDryRunDB(t), q), "WHERE")
}

func TestBuildLoanQuery_NestedSortJoinsOnce(t *testing.T) {
	title := "Catan"
	pred, err := criteria.Compose(criteria.Eq("game.title", criteria.Optional(&title)))
	require.NoError(t, err)

	q, err := buildLoanQuery(pred, []entity.SortOrder{
		{Property: "game.title", Direction: entity.SortDesc},
		{Property: "client.name", Direction: entity.SortAsc},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{joinGames, joinClients}, q.joins)

	sql := toSQL(newDryRunDB(t), q)
	assert.Contains(t, sql, `"game"."title" = 'Catan'`)
	assert.Contains(t, sql, `ORDER BY "game"."title" DESC,"client"."name","loans"."id"`)
}

func TestBuildLoanQuery_NestedFilterJoinsOnlyWhenNeeded(t *testing.T) {
	gameID, name := int64(2), "Ana"
	pred, err := criteria.Compose(
		criteria.Eq("game.id", criteria.Optional(&gameID)),
		criteria.Eq("client.name", criteria.Optional(&name)),
	)
	require.NoError(t, err)

	q, err := buildLoanQuery(pred, nil)
	require.NoError(t, err)

	// game.id is the loans.game_id foreign key
	assert.Equal(t, []string{joinClients}, q.joins)

	sql := toSQL(newDryRunDB(t), q)
	assert.Contains(t, sql, `"loans"."game_id" = 2`)
	assert.Contains(t, sql, `"client"."name" = 'Ana'`)
	assert.NotContains(t, sql, "JOIN games")
}

func TestBuildLoanQuery_ExplicitIDSortIsNotRepeated(t *testing.T) {
	q, err := buildLoanQuery(criteria.Predicate{}, []entity.SortOrder{{Property: "id", Direction: entity.SortDesc}})
	require.NoError(t, err)

	require.Len(t, q.order, 1)
	assert.True(t, q.order[0].Desc)
}

func TestBuildLoanQuery_UnknownField(t *testing.T) {
	_, err := buildLoanQuery(criteria.Predicate{}, []entity.SortOrder{{Property: "game.publisher"}})

	require.ErrorIs(t, err, repository.ErrUnknownField)
}

func TestOverlapExpressions(t *testing.T) {
	period := entity.NewDateRange(entity.NewDate(2024, 1, 5), entity.NewDate(2024, 1, 8))
	ownID := int64(11)

	exprs, err := overlapExpressions(entity.SubjectClient, 4, period, &ownID)
	require.NoError(t, err)

	db := newDryRunDB(t)
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var loans []*model.LoanModel

		return tx.Clauses(clause.Where{Exprs: exprs}).Find(&loans)
	})

	assert.Contains(t, sql, `"loans"."client_id" = 4`)
	assert.Contains(t, sql, `"loans"."start_date" <= '2024-01-08'`)
	assert.Contains(t, sql, `"loans"."end_date" >= '2024-01-05'`)
	assert.Contains(t, sql, `"loans"."id" <> 11`)

	_, err = overlapExpressions(entity.Subject("author"), 1, period, nil)
	require.Error(t, err)
}
