package criteria

import (
	"cmp"
	"reflect"
	"time"
)

// Record exposes attributes by dotted path for in-memory evaluation.
type Record interface {
	Field(path string) (any, bool)
}

// Match evaluates the predicate against a record. A clause whose path the
// record cannot resolve does not match, mirroring a NULL comparison in SQL.
func (p Predicate) Match(record Record) bool {
	for _, clause := range p.clauses {
		actual, ok := record.Field(clause.Path)
		if !ok || actual == nil {
			return false
		}
		if !clause.matches(actual) {
			return false
		}
	}

	return true
}

func (c Clause) matches(actual any) bool {
	order, comparable := Compare(actual, c.Value)
	switch c.Op {
	case Equals:
		if comparable {
			return order == 0
		}

		return reflect.DeepEqual(actual, c.Value)
	case LessOrEqual:
		return comparable && order <= 0
	case GreaterOrEqual:
		return comparable && order >= 0
	default:
		return false
	}
}

// Compare orders two values of the same natural kind: times, integers,
// floats, strings or booleans. Integers of different widths compare by value.
// The second result is false when the values have no common ordering.
func Compare(a, b any) (int, bool) {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		if !ok {
			return 0, false
		}

		return ta.Compare(tb), true
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(va) && isInt(vb):
		return compareInts(va, vb), true
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb)), true
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmp.Compare(va.String(), vb.String()), true
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		switch {
		case va.Bool() == vb.Bool():
			return 0, true
		case !va.Bool():
			return -1, true
		default:
			return 1, true
		}
	default:
		return 0, false
	}
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isInt(v reflect.Value) bool {
	return isSigned(v) || isUnsigned(v)
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

// compareInts orders integers of any width and signedness without converting
// an unsigned value above math.MaxInt64 to int64.
func compareInts(a, b reflect.Value) int {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(a) && isUnsigned(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isSigned(a):
		if a.Int() < 0 {
			return -1
		}

		return cmp.Compare(uint64(a.Int()), b.Uint())
	default:
		return -compareInts(b, a)
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v):
		return float64(v.Int())
	case isUnsigned(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
