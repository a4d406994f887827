package postgres

import (
	"slices"
	"time"

	"ludoteca/internal/domain/criteria"
	"ludoteca/internal/domain/entity"
	"ludoteca/internal/domain/repository"
	"ludoteca/internal/errors"

	"gorm.io/gorm/clause"
)

const (
	loansTable   = "loans"
	gameAlias    = "game"
	clientAlias  = "client"
	joinGames    = "LEFT JOIN games AS game ON game.id = loans.game_id"
	joinClients  = "LEFT JOIN clients AS client ON client.id = loans.client_id"
	sqlDateStyle = time.DateOnly
)

// loanColumn is where a loan attribute path lives in SQL.
type loanColumn struct {
	table string
	name  string
	join  string
	date  bool
}

// loanColumns maps attribute paths to columns. Nested ids use the foreign key
// on loans itself; other nested attributes need the referenced table joined.
var loanColumns = map[string]loanColumn{
	"id":            {table: loansTable, name: "id"},
	"startDate":     {table: loansTable, name: "start_date", date: true},
	"endDate":       {table: loansTable, name: "end_date", date: true},
	"createdAt":     {table: loansTable, name: "created_at"},
	"updatedAt":     {table: loansTable, name: "updated_at"},
	"game.id":       {table: loansTable, name: "game_id"},
	"client.id":     {table: loansTable, name: "client_id"},
	"game.title":    {table: gameAlias, name: "title", join: joinGames},
	"game.age":      {table: gameAlias, name: "age", join: joinGames},
	"game.category": {table: gameAlias, name: "category_name", join: joinGames},
	"game.author":   {table: gameAlias, name: "author_name", join: joinGames},
	"client.name":   {table: clientAlias, name: "name", join: joinClients},
}

func lookupLoanColumn(path string) (loanColumn, error) {
	col, ok := loanColumns[path]
	if !ok {
		return loanColumn{}, errors.Wrapf(repository.ErrUnknownField, "%q", path)
	}

	return col, nil
}

func (c loanColumn) column() clause.Column {
	return clause.Column{Table: c.table, Name: c.name}
}

// sqlValue renders date values as calendar dates so they compare against DATE columns
// without any time zone conversion.
func (c loanColumn) sqlValue(value any) any {
	if t, ok := value.(time.Time); ok && c.date {
		return t.Format(sqlDateStyle)
	}

	return value
}

// loanQuery is a predicate and sort order translated to GORM clauses.
type loanQuery struct {
	where []clause.Expression
	order []clause.OrderByColumn
	joins []string
}

func (q *loanQuery) addJoin(join string) {
	if join != "" && !slices.Contains(q.joins, join) {
		q.joins = append(q.joins, join)
	}
}

func buildLoanQuery(pred criteria.Predicate, sort []entity.SortOrder) (*loanQuery, error) {
	q := &loanQuery{}

	for _, c := range pred.Clauses() {
		col, err := lookupLoanColumn(c.Path)
		if err != nil {
			return nil, err
		}
		if c.Nested() {
			q.addJoin(col.join)
		}

		value := col.sqlValue(c.Value)
		switch c.Op {
		case criteria.Equals:
			q.where = append(q.where, clause.Eq{Column: col.column(), Value: value})
		case criteria.LessOrEqual:
			q.where = append(q.where, clause.Lte{Column: col.column(), Value: value})
		case criteria.GreaterOrEqual:
			q.where = append(q.where, clause.Gte{Column: col.column(), Value: value})
		default:
			return nil, errors.Errorf("unsupported operator %s on %q", c.Op, c.Path)
		}
	}

	sortedByID := false
	for _, order := range sort {
		col, err := lookupLoanColumn(order.Property)
		if err != nil {
			return nil, err
		}
		q.addJoin(col.join)
		q.order = append(q.order, clause.OrderByColumn{Column: col.column(), Desc: order.Direction == entity.SortDesc})
		sortedByID = sortedByID || order.Property == "id"
	}
	// Stable paging needs a total order.
	if !sortedByID {
		q.order = append(q.order, clause.OrderByColumn{Column: loanColumns["id"].column()})
	}

	return q, nil
}

// overlapExpressions selects the loans of a subject whose dates intersect period.
func overlapExpressions(kind entity.Subject, ref int64, period entity.DateRange, excludeID *int64) ([]clause.Expression, error) {
	var subject loanColumn
	switch kind {
	case entity.SubjectGame:
		subject = loanColumns["game.id"]
	case entity.SubjectClient:
		subject = loanColumns["client.id"]
	default:
		return nil, errors.Errorf("unsupported overlap subject %q", kind)
	}

	start, end := loanColumns["startDate"], loanColumns["endDate"]
	exprs := []clause.Expression{
		clause.Eq{Column: subject.column(), Value: ref},
		clause.Lte{Column: start.column(), Value: start.sqlValue(period.End)},
		clause.Gte{Column: end.column(), Value: end.sqlValue(period.Start)},
	}
	if excludeID != nil {
		exprs = append(exprs, clause.Neq{Column: loanColumns["id"].column(), Value: *excludeID})
	}

	return exprs, nil
}
