// Package criteria builds conjunctive filter predicates from optional,
// independently keyed criteria over dotted attribute paths.
//
// A Predicate is store-agnostic: the postgres store translates its clauses
// into SQL, the memory store evaluates it with Match.
package criteria

import (
	"reflect"
	"strings"

	"ludoteca/internal/errors"
)

// MaxPathDepth is the deepest attribute path a criterion may use ("game.id").
const MaxPathDepth = 2

// ErrInvalidPath is returned for empty paths, empty segments or paths deeper than MaxPathDepth.
var ErrInvalidPath = errors.New("invalid criterion path")

// Operator is the comparison a criterion applies.
type Operator int

const (
	Equals Operator = iota
	LessOrEqual
	GreaterOrEqual
)

func (op Operator) String() string {
	switch op {
	case Equals:
		return "="
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// Criterion is one optional filter clause. A nil Value, typed nil pointers
// included, means "no constraint". Other pointers are dereferenced.
type Criterion struct {
	Path  string
	Op    Operator
	Value any
}

// Eq filters path equal to value.
func Eq(path string, value any) Criterion {
	return Criterion{Path: path, Op: Equals, Value: value}
}

// Lte filters path less than or equal to value.
func Lte(path string, value any) Criterion {
	return Criterion{Path: path, Op: LessOrEqual, Value: value}
}

// Gte filters path greater than or equal to value.
func Gte(path string, value any) Criterion {
	return Criterion{Path: path, Op: GreaterOrEqual, Value: value}
}

// Optional turns a possibly-nil pointer into a criterion value, so that
// an absent request field yields an absent criterion value.
func Optional[T any](value *T) any {
	if value == nil {
		return nil
	}

	return *value
}

// Clause is a criterion that survived composition: its path is validated and split.
type Clause struct {
	Path     string
	Segments []string
	Op       Operator
	Value    any
}

// Nested reports whether the clause targets an attribute of a referenced entity.
func (c Clause) Nested() bool {
	return len(c.Segments) == MaxPathDepth
}

// Predicate is the conjunction of its clauses. The zero value matches everything.
type Predicate struct {
	clauses []Clause
}

// Clauses returns the constraining clauses in composition order.
func (p Predicate) Clauses() []Clause {
	return append([]Clause(nil), p.clauses...)
}

// IsUniversal reports whether the predicate places no constraint.
func (p Predicate) IsUniversal() bool {
	return len(p.clauses) == 0
}

// Compose combines criteria with AND. Criteria with an absent value are skipped.
// Paths are validated even when the value is absent.
func Compose(criteria ...Criterion) (Predicate, error) {
	clauses := make([]Clause, 0, len(criteria))
	for _, criterion := range criteria {
		segments, err := SplitPath(criterion.Path)
		if err != nil {
			return Predicate{}, err
		}
		value, ok := presentValue(criterion.Value)
		if !ok {
			continue
		}

		clauses = append(clauses, Clause{
			Path:     criterion.Path,
			Segments: segments,
			Op:       criterion.Op,
			Value:    value,
		})
	}

	return Predicate{clauses: clauses}, nil
}

// presentValue unwraps pointers; it reports false when v is nil at any level.
func presentValue(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}

	return rv.Interface(), true
}

// SplitPath validates a dotted attribute path and returns its segments.
func SplitPath(path string) ([]string, error) {
	segments := strings.Split(path, ".")
	if len(segments) > MaxPathDepth {
		return nil, errors.Wrapf(ErrInvalidPath, "%q is deeper than %d levels", path, MaxPathDepth)
	}
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return nil, errors.Wrapf(ErrInvalidPath, "%q has an empty segment", path)
		}
	}

	return segments, nil
}
