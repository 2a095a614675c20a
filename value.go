package main

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind tags which case a Value holds.
type Kind int

const (
	// KindInteger holds an arbitrary-precision integer.
	KindInteger Kind = iota
	// KindFloat holds an IEEE-754 double.
	KindFloat
	// KindString holds a sequence of Unicode scalar values.
	KindString
	// KindBoolean holds true or false.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is Aceto's tagged variant: Integer, Float, String, or Boolean.
type Value struct {
	kind Kind
	i    *big.Int
	f    float64
	s    string
	b    bool
}

// Int wraps an arbitrary-precision integer as a Value.
func Int(i *big.Int) Value { return Value{kind: KindInteger, i: i} }

// IntFromInt64 wraps a machine integer as a Value.
func IntFromInt64(n int64) Value { return Int(big.NewInt(n)) }

// Float wraps a float64 as a Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str wraps a string as a Value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Bool wraps a boolean as a Value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// zeroInt is the universal underflow default (spec.md §3: popping an empty
// stack yields Integer 0).
func zeroInt() Value { return IntFromInt64(0) }

// Kind reports which case v holds.
func (v Value) Kind() Kind { return v.kind }

// Truthy implements spec.md §3's truthiness rule: 0, 0.0, "", and false are
// falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindInteger:
		return v.i.Sign() != 0
	case KindFloat:
		return v.f != 0
	case KindString:
		return v.s != ""
	case KindBoolean:
		return v.b
	default:
		return false
	}
}

// AsInt coerces v to *big.Int: integers pass through, floats truncate
// toward zero, strings parse (failure yields nil, ok=false), booleans
// become 0/1.
func (v Value) AsInt() (*big.Int, bool) {
	switch v.kind {
	case KindInteger:
		return v.i, true
	case KindFloat:
		bi, _ := big.NewFloat(math.Trunc(v.f)).Int(nil)
		return bi, true
	case KindString:
		bi, ok := new(big.Int).SetString(v.s, 10)
		if !ok {
			return nil, false
		}
		return bi, true
	case KindBoolean:
		if v.b {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	default:
		return nil, false
	}
}

// AsFloat coerces v to float64, by the same rules as AsInt.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInteger:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f, true
	case KindFloat:
		return v.f, true
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		return f, err == nil
	case KindBoolean:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ToInteger implements the `i` command: parse/truncate, falling back to 0
// on failure rather than raising.
func (v Value) ToInteger() Value {
	if bi, ok := v.AsInt(); ok {
		return Int(bi)
	}
	return zeroInt()
}

// ToFloat implements the `f` command, falling back to 0.0 on failure.
func (v Value) ToFloat() Value {
	if f, ok := v.AsFloat(); ok {
		return Float(f)
	}
	return Float(0)
}

// ToBoolean implements the `b` command: truthiness as a Boolean.
func (v Value) ToBoolean() Value { return Bool(v.Truthy()) }

// String renders v in the canonical textual form used by the `∑` command
// and by diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return v.i.String()
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBoolean:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// RawString returns the underlying string for KindString values, and ""
// otherwise; used by string-only commands that should not stringify other
// kinds implicitly.
func (v Value) RawString() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// RawBool returns the underlying bool for KindBoolean values.
func (v Value) RawBool() (bool, bool) {
	if v.kind == KindBoolean {
		return v.b, true
	}
	return false, false
}

// Equal implements `=`: same-case value equality, numeric equality across
// Integer/Float.
func (v Value) Equal(o Value) bool {
	if v.kind == KindInteger && o.kind == KindInteger {
		return v.i.Cmp(o.i) == 0
	}
	if isNumeric(v.kind) && isNumeric(o.kind) {
		a, _ := v.AsFloat()
		b, _ := o.AsFloat()
		return a == b
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindBoolean:
		return v.b == o.b
	default:
		return false
	}
}

// Compare returns -1, 0, or 1 for v relative to o, by numeric value when
// both are numeric, lexically for strings, and false<true for booleans.
func (v Value) Compare(o Value) int {
	if isNumeric(v.kind) && isNumeric(o.kind) {
		if v.kind == KindInteger && o.kind == KindInteger {
			return v.i.Cmp(o.i)
		}
		a, _ := v.AsFloat()
		b, _ := o.AsFloat()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	as, aok := v.RawString()
	bs, bok := o.RawString()
	if aok && bok {
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	}
	ab, aok := v.RawBool()
	bb, bok := o.RawBool()
	if aok && bok {
		if ab == bb {
			return 0
		}
		if !ab && bb {
			return -1
		}
		return 1
	}
	// mismatched kinds with no shared ordering: compare textual forms
	as2, bs2 := v.String(), o.String()
	switch {
	case as2 < bs2:
		return -1
	case as2 > bs2:
		return 1
	default:
		return 0
	}
}

func isNumeric(k Kind) bool { return k == KindInteger || k == KindFloat }

// numericOp computes an arithmetic result for two Values: the result is
// Float if either operand is Float, else Integer (spec.md §4.3).
func numericOp(a, b Value, intOp func(z, x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) Value {
	if a.kind == KindFloat || b.kind == KindFloat {
		x, _ := a.AsFloat()
		y, _ := b.AsFloat()
		return Float(floatOp(x, y))
	}
	x, _ := a.AsInt()
	y, _ := b.AsInt()
	z := new(big.Int)
	intOp(z, x, y)
	return Int(z)
}

// Add implements `+`.
func (v Value) Add(o Value) Value {
	if s, ok := v.RawString(); ok {
		if t, ok := o.RawString(); ok {
			return Str(s + t)
		}
	}
	return numericOp(v, o, func(z, x, y *big.Int) *big.Int { return z.Add(x, y) },
		func(x, y float64) float64 { return x + y })
}

// Sub implements `-`.
func (v Value) Sub(o Value) Value {
	return numericOp(v, o, func(z, x, y *big.Int) *big.Int { return z.Sub(x, y) },
		func(x, y float64) float64 { return x - y })
}

// Mul implements `*`.
func (v Value) Mul(o Value) Value {
	return numericOp(v, o, func(z, x, y *big.Int) *big.Int { return z.Mul(x, y) },
		func(x, y float64) float64 { return x * y })
}

// FloorDiv implements integer `/`: floor division toward negative infinity.
// Float operands fall back to ordinary float division, matching `:`.
func (v Value) FloorDiv(o Value) (Value, error) {
	if v.kind == KindFloat || o.kind == KindFloat {
		return v.FloatDiv(o)
	}
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	if y.Sign() == 0 {
		return Value{}, errDivideByZero
	}
	q, m := new(big.Int), new(big.Int)
	q.DivMod(x, y, m) // Euclidean: m is always >= 0; DivMod already floors for y>0
	if y.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return Int(q), nil
}

// FloatDiv implements `:`: float division.
func (v Value) FloatDiv(o Value) (Value, error) {
	x, _ := v.AsFloat()
	y, _ := o.AsFloat()
	if y == 0 {
		return Value{}, errDivideByZero
	}
	return Float(x / y), nil
}

// Mod implements `%`: Integer remainder takes the sign of the divisor;
// Float remainder is fmod-style via math.Mod (see DESIGN.md open question).
func (v Value) Mod(o Value) (Value, error) {
	if v.kind == KindFloat || o.kind == KindFloat {
		x, _ := v.AsFloat()
		y, _ := o.AsFloat()
		if y == 0 {
			return Value{}, errDivideByZero
		}
		return Float(math.Mod(x, y)), nil
	}
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	if y.Sign() == 0 {
		return Value{}, errDivideByZero
	}
	m := new(big.Int).Mod(x, y) // Go's Mod is Euclidean: result has sign of... always non-negative
	if y.Sign() < 0 && m.Sign() != 0 {
		m.Add(m, y)
	}
	return Int(m), nil
}

// Pow implements `F` on numeric operands: a ** b.
func (v Value) Pow(o Value) Value {
	if v.kind == KindFloat || o.kind == KindFloat {
		x, _ := v.AsFloat()
		y, _ := o.AsFloat()
		return Float(math.Pow(x, y))
	}
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	if y.Sign() < 0 {
		xf, _ := new(big.Float).SetInt(x).Float64()
		yf, _ := new(big.Float).SetInt(y).Float64()
		return Float(math.Pow(xf, yf))
	}
	z := new(big.Int).Exp(x, y, nil)
	return Int(z)
}

// ShiftLeft implements `«`.
func (v Value) ShiftLeft(o Value) Value {
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	return Int(new(big.Int).Lsh(x, uint(y.Uint64())))
}

// ShiftRight implements `»`.
func (v Value) ShiftRight(o Value) Value {
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	return Int(new(big.Int).Rsh(x, uint(y.Uint64())))
}

// BitAnd implements `A`.
func (v Value) BitAnd(o Value) Value {
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	return Int(new(big.Int).And(x, y))
}

// BitOr implements `V`.
func (v Value) BitOr(o Value) Value {
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	return Int(new(big.Int).Or(x, y))
}

// BitXor implements `H`.
func (v Value) BitXor(o Value) Value {
	x, _ := v.AsInt()
	y, _ := o.AsInt()
	return Int(new(big.Int).Xor(x, y))
}

// BitNot implements `a`: bitwise NOT of an integer.
func (v Value) BitNot() Value {
	x, _ := v.AsInt()
	return Int(new(big.Int).Not(x))
}

// Not implements `!`: logical negation.
func (v Value) Not() Value { return Bool(!v.Truthy()) }

// Invert implements `~`: reverse a String, negate a Boolean, bitwise-invert
// an Integer; Floats are negated arithmetically, so applying `~` twice is
// the identity for every kind.
func (v Value) Invert() Value {
	switch v.kind {
	case KindString:
		runes := []rune(v.s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return Str(string(runes))
	case KindBoolean:
		return Bool(!v.b)
	case KindFloat:
		return Float(-v.f)
	default:
		return v.BitNot()
	}
}

// Sign implements `y`: -1/0/1.
func (v Value) Sign() Value {
	if v.kind == KindInteger {
		return IntFromInt64(int64(v.i.Sign()))
	}
	f, _ := v.AsFloat()
	switch {
	case f < 0:
		return IntFromInt64(-1)
	case f > 0:
		return IntFromInt64(1)
	default:
		return IntFromInt64(0)
	}
}

// Abs implements `±`.
func (v Value) Abs() Value {
	switch v.kind {
	case KindInteger:
		return Int(new(big.Int).Abs(v.i))
	case KindFloat:
		return Float(math.Abs(v.f))
	default:
		f, _ := v.AsFloat()
		return Float(math.Abs(f))
	}
}

// Inc implements `I`.
func (v Value) Inc() Value { return v.Add(IntFromInt64(1)) }

// Dec implements `D`.
func (v Value) Dec() Value { return v.Sub(IntFromInt64(1)) }
