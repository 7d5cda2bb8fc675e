package models

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage is a whole-number percent that may be undefined.
// The zero value is undefined, not 0%.
type Percentage struct {
	value   int64
	defined bool
}

// UndefinedPercentage marks a percentage that has no meaning in the current
// state (no positive income).
var UndefinedPercentage = Percentage{}

// NewPercentage returns a defined percentage of v percent.
func NewPercentage(v int64) Percentage {
	return Percentage{value: v, defined: true}
}

// PercentageOf returns round(part / whole * 100), rounding half away from
// zero. A whole <= 0 yields UndefinedPercentage.
func PercentageOf(part, whole decimal.Decimal) Percentage {
	if !whole.IsPositive() {
		return UndefinedPercentage
	}
	// multiply before dividing so exact halves such as 1/8 survive the division
	pct := part.Mul(hundred).DivRound(whole, 16).Round(0)
	return NewPercentage(pct.IntPart())
}

// IsDefined reports whether p holds a value.
func (p Percentage) IsDefined() bool {
	return p.defined
}

// Value returns the percent and whether it is defined.
func (p Percentage) Value() (int64, bool) {
	return p.value, p.defined
}

// String returns the bare number, or "undefined" for the sentinel.
func (p Percentage) String() string {
	if !p.defined {
		return "undefined"
	}
	return strconv.FormatInt(p.value, 10)
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(p.value, 10)), nil
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = UndefinedPercentage
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NewPercentage(v)
	return nil
}
