package try

import (
	"errors"
	"fmt"
	"reflect"
)

// Equal runs a test that passes when a == b under Go interface equality.
// Comparing values of an uncomparable dynamic type (slices, maps, funcs)
// panics at runtime; that panic flows through the normal failure path with
// its own description instead of the not-equal message.
func (r *Runner) Equal(sc SourceContext, a, b any) bool {
	return r.Run(sc, func(...any) error {
		if !(a == b) {
			return errors.New("Arguments are not equal!")
		}
		return nil
	}, a, b)
}

// NotEqual runs a test that passes when a != b. See Equal for the behavior
// on uncomparable values.
func (r *Runner) NotEqual(sc SourceContext, a, b any) bool {
	return r.Run(sc, func(...any) error {
		if !(a != b) {
			return errors.New("Arguments are equal!")
		}
		return nil
	}, a, b)
}

// Less runs a test that passes when a < b. Numeric operands compare
// numerically across kinds, strings lexicographically; anything else fails
// with a description naming the two types.
func (r *Runner) Less(sc SourceContext, a, b any) bool {
	return r.Run(sc, func(...any) error {
		if !orderedLess(a, b, false) {
			return errors.New("The first argument is not less than the second!")
		}
		return nil
	}, a, b)
}

// LessEqual runs a test that passes when a <= b. See Less for the supported
// operand types.
func (r *Runner) LessEqual(sc SourceContext, a, b any) bool {
	return r.Run(sc, func(...any) error {
		if !orderedLess(a, b, true) {
			return errors.New("The first argument is not less than or equal to the second!")
		}
		return nil
	}, a, b)
}

// orderedLess compares two operands of possibly different dynamic types.
// Unsupported operands panic with a descriptive error; the Runner reports
// that panic as an ordinary test failure.
func orderedLess(a, b any, orEqual bool) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		if orEqual {
			return av.String() <= bv.String()
		}
		return av.String() < bv.String()
	}
	if isNumeric(av) && isNumeric(bv) {
		return numericLess(av, bv, orEqual)
	}
	panic(fmt.Errorf("cannot order values of types %T and %T", a, b))
}

func isNumeric(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func numericLess(av, bv reflect.Value, orEqual bool) bool {
	switch {
	case isFloat(av) || isFloat(bv):
		af, bf := toFloat(av), toFloat(bv)
		if orEqual {
			return af <= bf
		}
		return af < bf
	case isUint(av) && isUint(bv):
		if orEqual {
			return av.Uint() <= bv.Uint()
		}
		return av.Uint() < bv.Uint()
	case isUint(av):
		// uint vs signed int: a negative right operand is below any uint
		bi := bv.Int()
		if bi < 0 {
			return false
		}
		if orEqual {
			return av.Uint() <= uint64(bi)
		}
		return av.Uint() < uint64(bi)
	case isUint(bv):
		ai := av.Int()
		if ai < 0 {
			return true
		}
		if orEqual {
			return uint64(ai) <= bv.Uint()
		}
		return uint64(ai) < bv.Uint()
	default:
		if orEqual {
			return av.Int() <= bv.Int()
		}
		return av.Int() < bv.Int()
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
