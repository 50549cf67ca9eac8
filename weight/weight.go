// Package weight defines the numeric values carried by stepflow graph
// edges: a closed two-kind representation (bounded int32, finite
// float32) with zero and infinity constants, saturating arithmetic,
// a total order, and round-trippable text parse/format.
//
// A graph fixes its Kind at creation and every weight stored on that
// graph uses it, so mixed-kind arithmetic never arises from graph
// data. The operations stay total regardless: when kinds differ, the
// right operand is converted to the receiver's kind.
package weight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors for weight construction and parsing.
var (
	// ErrMalformed indicates a text literal that does not parse as the requested kind.
	ErrMalformed = errors.New("weight: malformed numeric literal")
	// ErrNotFinite indicates a NaN or infinite value where a finite one is required.
	ErrNotFinite = errors.New("weight: value must be finite")
	// ErrBadKind indicates an unknown weight-kind token.
	ErrBadKind = errors.New("weight: unknown weight kind")
)

// Kind selects the numeric representation carried by a Weight.
type Kind uint8

const (
	// Int32 stores a bounded signed integer; arithmetic saturates at the
	// int32 bounds and Inf(Int32) is math.MaxInt32.
	Int32 Kind = iota
	// Float32 stores an IEEE single-precision value. NaN and infinities
	// are rejected wherever a weight enters the system.
	Float32
)

// String returns the kind's token in the graph text format: "int" or "float".
func (k Kind) String() string {
	if k == Float32 {
		return "float"
	}

	return "int"
}

// ParseKind maps a text-format token onto its Kind.
// Returns ErrBadKind for anything but "int" and "float".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return Int32, nil
	case "float":
		return Float32, nil
	default:
		return Int32, fmt.Errorf("%w: %q", ErrBadKind, s)
	}
}

// Weight is an immutable numeric value tagged with its Kind.
// The zero value equals Zero(Int32).
type Weight struct {
	kind Kind
	i    int32
	f    float32
}

// Zero returns the additive identity of kind k.
func Zero(k Kind) Weight {
	return Weight{kind: k}
}

// Inf returns the saturation ceiling of kind k:
// math.MaxInt32 for Int32, IEEE +Inf for Float32.
func Inf(k Kind) Weight {
	if k == Float32 {
		return Weight{kind: Float32, f: float32(math.Inf(1))}
	}

	return Weight{kind: Int32, i: math.MaxInt32}
}

// NewInt32 wraps v as an Int32 weight.
func NewInt32(v int32) Weight {
	return Weight{kind: Int32, i: v}
}

// NewFloat32 wraps v as a Float32 weight.
// NaN and infinities fail with ErrNotFinite.
func NewFloat32(v float32) (Weight, error) {
	if f64 := float64(v); math.IsNaN(f64) || math.IsInf(f64, 0) {
		return Weight{}, fmt.Errorf("%w: %v", ErrNotFinite, v)
	}

	return Weight{kind: Float32, f: v}, nil
}

// MustFloat32 is NewFloat32 for values known to be finite; it panics
// otherwise. Intended for tests and examples.
func MustFloat32(v float32) Weight {
	w, err := NewFloat32(v)
	if err != nil {
		panic(err)
	}

	return w
}

// Parse converts a text literal into a weight of kind k.
// Int32 accepts base-10 integers within the int32 range; Float32
// accepts finite float32 literals. Out-of-range or unparseable text
// fails with ErrMalformed, finite-syntax NaN/Inf literals with
// ErrNotFinite.
func Parse(k Kind, s string) (Weight, error) {
	if k == Float32 {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Weight{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Weight{}, fmt.Errorf("%w: %q", ErrNotFinite, s)
		}

		return Weight{kind: Float32, f: float32(v)}, nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Weight{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	return Weight{kind: Int32, i: int32(v)}, nil
}

// Kind reports the representation tag of w.
func (w Weight) Kind() Kind {
	return w.kind
}

// IsZero reports whether w is the additive identity of its kind.
func (w Weight) IsZero() bool {
	if w.kind == Float32 {
		return w.f == 0
	}

	return w.i == 0
}

// IsInf reports whether w has reached the saturation ceiling Inf(w.Kind()).
func (w Weight) IsInf() bool {
	if w.kind == Float32 {
		return math.IsInf(float64(w.f), 1)
	}

	return w.i == math.MaxInt32
}

// IsFinite reports whether w holds a finite value. Int32 weights are
// always finite (the MaxInt32 ceiling is an ordinary integer); Float32
// weights are finite unless arithmetic drove them to an infinity.
func (w Weight) IsFinite() bool {
	if w.kind == Float32 {
		f64 := float64(w.f)

		return !math.IsNaN(f64) && !math.IsInf(f64, 0)
	}

	return true
}

// Add returns w + o. Int32 addition saturates at the int32 bounds;
// Float32 follows IEEE rules. The result keeps w's kind.
func (w Weight) Add(o Weight) Weight {
	if w.kind == Float32 {
		return Weight{kind: Float32, f: w.f + o.asFloat32()}
	}

	return Weight{kind: Int32, i: satInt32(int64(w.i) + int64(o.asInt32()))}
}

// Sub returns w − o under the same rules as Add.
func (w Weight) Sub(o Weight) Weight {
	if w.kind == Float32 {
		return Weight{kind: Float32, f: w.f - o.asFloat32()}
	}

	return Weight{kind: Int32, i: satInt32(int64(w.i) - int64(o.asInt32()))}
}

// Cmp compares w and o, returning -1, 0, or +1. The order is total:
// Float32 weights never carry NaN.
func (w Weight) Cmp(o Weight) int {
	if w.kind == Float32 {
		a, b := w.f, o.asFloat32()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}

	a, b := w.i, o.asInt32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether w sorts strictly before o.
func (w Weight) Less(o Weight) bool {
	return w.Cmp(o) < 0
}

// Min returns the smaller of a and b, preferring a on ties.
func Min(a, b Weight) Weight {
	if b.Less(a) {
		return b
	}

	return a
}

// String formats the numeric value. Float32 uses the shortest
// representation that re-parses to the same value, so
// Parse(w.Kind(), w.String()) round-trips exactly.
func (w Weight) String() string {
	if w.kind == Float32 {
		return strconv.FormatFloat(float64(w.f), 'g', -1, 32)
	}

	return strconv.FormatInt(int64(w.i), 10)
}

// satInt32 clamps v to the int32 range.
func satInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}

// asInt32 converts to the Int32 representation, clamping out-of-range
// float values so cross-kind operations stay total.
func (w Weight) asInt32() int32 {
	if w.kind == Int32 {
		return w.i
	}
	f64 := float64(w.f)
	switch {
	case f64 >= math.MaxInt32:
		return math.MaxInt32
	case f64 <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(w.f)
	}
}

// asFloat32 converts to the Float32 representation.
func (w Weight) asFloat32() float32 {
	if w.kind == Float32 {
		return w.f
	}

	return float32(w.i)
}
