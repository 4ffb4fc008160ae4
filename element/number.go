package element

import (
	"math"
	"reflect"

	"github.com/go-theft-auto/guikit"
)

// Integer is the set of integer kinds a bounded element can hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point kinds a bounded element can hold.
type Float interface {
	~float32 | ~float64
}

// Number is any value a spin box or slider can hold.
type Number interface {
	Integer | Float
}

type numberKind int

const (
	kindSigned numberKind = iota
	kindUnsigned
	kindFloat
)

func kindOf[T Number]() (numberKind, int) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return kindFloat, t.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUnsigned, t.Bits()
	default:
		return kindSigned, t.Bits()
	}
}

// FullRange returns the lowest and highest values T can represent. For
// floats that is [-Max, Max] of the type; infinities are excluded.
func FullRange[T Number]() (lo, hi T) {
	kind, bits := kindOf[T]()
	switch kind {
	case kindFloat:
		m := math.MaxFloat64
		if bits == 32 {
			m = math.MaxFloat32
		}
		return T(-m), T(m)
	case kindUnsigned:
		var m uint64 = math.MaxUint64
		if bits < 64 {
			m = 1<<bits - 1
		}
		return 0, T(m)
	default:
		var m int64 = math.MaxInt64
		if bits < 64 {
			m = 1<<(bits-1) - 1
		}
		return T(-m - 1), T(m)
	}
}

// toInt converts v to the host's int, saturating at the int limits.
func toInt[T Number](v T) int {
	kind, _ := kindOf[T]()
	switch kind {
	case kindUnsigned:
		if u := uint64(v); u <= math.MaxInt {
			return int(u)
		}
		return math.MaxInt
	case kindFloat:
		f := math.Round(float64(v))
		if f >= math.MaxInt {
			return math.MaxInt
		}
		if f <= math.MinInt {
			return math.MinInt
		}
		return int(f)
	default:
		i := int64(v)
		if i > math.MaxInt {
			return math.MaxInt
		}
		if i < math.MinInt {
			return math.MinInt
		}
		return int(i)
	}
}

// numRange is an inclusive [lo, hi] range that values are clamped into.
type numRange[T Number] struct {
	lo, hi T
}

func fullRange[T Number]() numRange[T] {
	lo, hi := FullRange[T]()
	return numRange[T]{lo: lo, hi: hi}
}

// Range returns the inclusive bounds.
func (r *numRange[T]) Range() (lo, hi T) { return r.lo, r.hi }

func (r *numRange[T]) setRange(lo, hi T) {
	if lo > hi {
		lo, hi = hi, lo
	}
	r.lo, r.hi = lo, hi
}

// Clamp limits v to the range. NaN clamps to the low bound.
func (r *numRange[T]) Clamp(v T) T {
	if v != v {
		return r.lo
	}
	return min(max(v, r.lo), r.hi)
}

// input draws a host number field for *v with the range applied and
// reports whether the user changed it.
func (r *numRange[T]) input(ctx *guikit.Context, label string, v *T, step T, opts ...guikit.Option) bool {
	opts = append(opts, guikit.WithRange(float64(r.lo), float64(r.hi)))
	var nv T
	if kind, _ := kindOf[T](); kind == kindFloat {
		f := float64(*v)
		if !ctx.InputFloat(label, &f, float64(step), opts...) {
			return false
		}
		nv = r.Clamp(T(f))
	} else {
		i := toInt(*v)
		if !ctx.InputInt(label, &i, toInt(step), opts...) {
			return false
		}
		nv = r.Clamp(r.fromInt(i))
	}
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// slider draws a host slider for *v across the range.
func (r *numRange[T]) slider(ctx *guikit.Context, label string, v *T, opts ...guikit.Option) bool {
	var nv T
	if kind, _ := kindOf[T](); kind == kindFloat {
		f := float64(*v)
		if !ctx.SliderFloat(label, &f, float64(r.lo), float64(r.hi), opts...) {
			return false
		}
		nv = r.Clamp(T(f))
	} else {
		i := toInt(*v)
		if !ctx.SliderInt(label, &i, toInt(r.lo), toInt(r.hi), opts...) {
			return false
		}
		nv = r.Clamp(r.fromInt(i))
	}
	if nv == *v {
		return false
	}
	*v = nv
	return true
}

// fromInt converts a host int back to T, clamping in int space first so
// the conversion cannot wrap.
func (r *numRange[T]) fromInt(i int) T {
	i = min(max(i, toInt(r.lo)), toInt(r.hi))
	kind, _ := kindOf[T]()
	if kind == kindUnsigned {
		return T(uint64(i))
	}
	return T(int64(i))
}
