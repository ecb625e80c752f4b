package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps a big.Rat so numeric keywords (minimum, maximum, multipleOf, ...)
// compare and combine exactly instead of accumulating float error across
// repeated merges.
type Rat struct {
	*big.Rat
}

// NewRat builds a Rat from a float64, int, or numeric string. It returns nil
// if the value cannot be converted, mirroring a permissive
// constructor.
func NewRat(value interface{}) *Rat {
	r, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{r}
}

func convertToBigRat(data interface{}) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	case *big.Rat:
		return new(big.Rat).Set(v), nil
	default:
		return nil, ErrUnsupportedRatValue
	}

	r := new(big.Rat)
	if _, ok := r.SetString(str); !ok {
		return nil, ErrUnsupportedRatValue
	}
	return r, nil
}

// UnmarshalJSON implements json.Unmarshaler for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}
	r.Rat = converted
	return nil
}

// MarshalJSON implements json.Marshaler for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// FormatRat renders a Rat as a plain integer or trimmed decimal string when
// the value terminates within a reasonable number of decimal digits, or as
// an exact "numerator/denominator" fraction when it doesn't (e.g. 1/3):
// truncating a repeating decimal would silently lose precision across
// repeated merges, which defeats the point of using big.Rat at all.
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	const digits = 12
	dec := r.FloatString(digits)
	dec = strings.TrimRight(dec, "0")
	dec = strings.TrimRight(dec, ".")
	if dec == "" || dec == "-" {
		dec = "0"
	}
	if back, ok := new(big.Rat).SetString(dec); ok && back.Cmp(r.Rat) == 0 {
		return dec
	}
	return r.Num().String() + "/" + r.Denom().String()
}

// Clone returns a fresh Rat with the same value, or nil.
func (r *Rat) Clone() *Rat {
	if r == nil || r.Rat == nil {
		return nil
	}
	return &Rat{new(big.Rat).Set(r.Rat)}
}

// Equal reports whether two Rats (possibly nil) hold the same value.
func (r *Rat) Equal(o *Rat) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Rat == nil || o.Rat == nil {
		return r.Rat == o.Rat
	}
	return r.Cmp(o.Rat) == 0
}

// ratGCD returns the greatest common divisor of two positive big.Ints.
func ratGCD(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// lcmRat computes the least common multiple of two positive rationals that
// both represent integers, returning (result, ok). When either operand is
// not an integer the caller falls back to retaining both constraints.
func lcmRat(a, b *Rat) (*Rat, bool) {
	if a == nil || b == nil || a.Rat == nil || b.Rat == nil {
		return nil, false
	}
	if !a.IsInt() || !b.IsInt() {
		return nil, false
	}
	ai, bi := a.Num(), b.Num()
	if ai.Sign() == 0 || bi.Sign() == 0 {
		return nil, false
	}
	g := ratGCD(ai, bi)
	if g.Sign() == 0 {
		return nil, false
	}
	lcm := new(big.Int).Div(new(big.Int).Mul(ai, bi), g)
	lcm.Abs(lcm)
	return &Rat{new(big.Rat).SetInt(lcm)}, true
}
