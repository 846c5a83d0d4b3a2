package interp

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a single reported lab result. Most parameters are numeric, but
// urinalysis and serology panels report qualitative strings ("negative",
// "1:160", "many"), so a value carries either form.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// Number returns a numeric value.
func Number(v float64) Value {
	return Value{num: v, numeric: true}
}

// Text returns a qualitative value.
func Text(s string) Value {
	return Value{text: s}
}

// FormatNum renders a float the way lab values are printed, without
// trailing zeros.
func FormatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round2 rounds to two decimals, the precision derived indices report at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsNumber reports whether the value was reported numerically.
func (v Value) IsNumber() bool { return v.numeric }

// Float returns the numeric value and whether one is present.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// String renders the value as it was reported.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// Tolerate numbers that arrive quoted, e.g. from form inputs.
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*v = Number(n)
		return nil
	}
	*v = Text(s)
	return nil
}
