package criteria

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord map[string]any

func (r fakeRecord) Field(path string) (any, bool) {
	v, ok := r[path]

	return v, ok
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestCompose_SkipsAbsentValues(t *testing.T) {
	var gameID *int64

	pred, err := Compose(
		Eq("game.id", Optional(gameID)),
		Eq("client.id", nil),
		Lte("startDate", nil),
	)

	require.NoError(t, err)
	assert.True(t, pred.IsUniversal())
	assert.True(t, pred.Match(fakeRecord{}))
}

func TestCompose_TypedNilPointersAreAbsent(t *testing.T) {
	var date *time.Time

	pred, err := Compose(
		Eq("game.id", (*int64)(nil)),
		Gte("endDate", date),
	)

	require.NoError(t, err)
	assert.True(t, pred.IsUniversal())
	assert.True(t, pred.Match(fakeRecord{"game.id": int64(3), "endDate": day(4)}))
}

func TestCompose_DereferencesPointers(t *testing.T) {
	gameID := int64(3)

	pred, err := Compose(Eq("game.id", &gameID))
	require.NoError(t, err)

	clauses := pred.Clauses()
	require.Len(t, clauses, 1)
	assert.Equal(t, int64(3), clauses[0].Value)
	assert.True(t, pred.Match(fakeRecord{"game.id": int64(3)}))
	assert.False(t, pred.Match(fakeRecord{"game.id": int64(4)}))
}

func TestCompose_ZeroCriteriaMatchesEverything(t *testing.T) {
	pred, err := Compose()

	require.NoError(t, err)
	assert.True(t, pred.IsUniversal())
	assert.True(t, pred.Match(fakeRecord{"id": int64(1)}))
}

func TestCompose_RejectsInvalidPaths(t *testing.T) {
	tests := []string{"", "game..id", "a.b.c", ".id", "game."}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := Compose(Eq(path, 1))
			require.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestCompose_ValidatesPathEvenWithoutValue(t *testing.T) {
	_, err := Compose(Eq("game.category.id", nil))

	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestCompose_KeepsClauseOrderAndDepth(t *testing.T) {
	gameID := int64(3)

	pred, err := Compose(
		Eq("game.id", Optional(&gameID)),
		Lte("startDate", day(5)),
	)
	require.NoError(t, err)

	clauses := pred.Clauses()
	require.Len(t, clauses, 2)
	assert.Equal(t, []string{"game", "id"}, clauses[0].Segments)
	assert.True(t, clauses[0].Nested())
	assert.Equal(t, int64(3), clauses[0].Value)
	assert.False(t, clauses[1].Nested())
	assert.Equal(t, LessOrEqual, clauses[1].Op)
}

func TestPredicate_Match(t *testing.T) {
	record := fakeRecord{
		"id":         int64(7),
		"game.id":    int64(1),
		"game.title": "Catan",
		"startDate":  day(1),
		"endDate":    day(10),
	}

	tests := []struct {
		name     string
		criteria []Criterion
		want     bool
	}{
		{name: "equal nested id", criteria: []Criterion{Eq("game.id", int64(1))}, want: true},
		{name: "equal across int widths", criteria: []Criterion{Eq("game.id", 1)}, want: true},
		{name: "different nested id", criteria: []Criterion{Eq("game.id", int64(2))}, want: false},
		{name: "equal string", criteria: []Criterion{Eq("game.title", "Catan")}, want: true},
		{name: "date inside range", criteria: []Criterion{Lte("startDate", day(5)), Gte("endDate", day(5))}, want: true},
		{name: "date on start bound", criteria: []Criterion{Lte("startDate", day(1)), Gte("endDate", day(1))}, want: true},
		{name: "date on end bound", criteria: []Criterion{Lte("startDate", day(10)), Gte("endDate", day(10))}, want: true},
		{name: "date after range", criteria: []Criterion{Lte("startDate", day(11)), Gte("endDate", day(11))}, want: false},
		{name: "unknown field never matches", criteria: []Criterion{Eq("client.name", "Ana")}, want: false},
		{name: "mismatched kinds do not order", criteria: []Criterion{Lte("startDate", "2024-01-05")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := Compose(tt.criteria...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pred.Match(record))
		})
	}
}

func TestCompare(t *testing.T) {
	order, ok := Compare(day(1), day(2))
	assert.True(t, ok)
	assert.Equal(t, -1, order)

	order, ok = Compare(int32(5), int64(5))
	assert.True(t, ok)
	assert.Equal(t, 0, order)

	order, ok = Compare(2.5, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, order)

	_, ok = Compare(day(1), int64(1))
	assert.False(t, ok)
}

func TestCompare_MixedSignedness(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "uint64 above int64 range", a: uint64(math.MaxUint64), b: int64(math.MaxInt64), want: 1},
		{name: "int64 below uint64 above range", a: int64(math.MaxInt64), b: uint64(math.MaxInt64) + 1, want: -1},
		{name: "negative against unsigned", a: int64(-1), b: uint64(0), want: -1},
		{name: "equal across signedness", a: uint64(7), b: int(7), want: 0},
		{name: "uintptr", a: uintptr(9), b: int32(3), want: 1},
		{name: "both uint64", a: uint64(math.MaxUint64), b: uint64(math.MaxUint64 - 1), want: 1},
		{name: "uint64 against float", a: uint64(3), b: 2.5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := Compare(tt.a, tt.b)

			require.True(t, ok)
			assert.Equal(t, tt.want, order)
		})
	}
}
