package interp

// Sex selects the reference band for sex-specific parameters.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex normalizes free-text sex designations.
func ParseSex(s string) Sex {
	switch s {
	case "male", "Male", "MALE", "m", "M":
		return SexMale
	case "female", "Female", "FEMALE", "f", "F":
		return SexFemale
	default:
		return SexUnknown
	}
}

// Status is the classification of one parameter against its reference range.
type Status string

const (
	StatusNormal       Status = "normal"
	StatusLow          Status = "low"
	StatusHigh         Status = "high"
	StatusCriticalLow  Status = "critical_low"
	StatusCriticalHigh Status = "critical_high"
	StatusAbnormal     Status = "abnormal"
	StatusUnknown      Status = "unknown"
)

// IsAbnormal reports whether the status represents a flagged finding.
func (s Status) IsAbnormal() bool {
	return s != StatusNormal && s != StatusUnknown
}

// IsCritical reports whether the status crosses a critical threshold.
func (s Status) IsCritical() bool {
	return s == StatusCriticalLow || s == StatusCriticalHigh
}

// Direction maps a status onto the key used by differential tables.
func (s Status) Direction() string {
	switch s {
	case StatusLow, StatusCriticalLow:
		return "low"
	case StatusHigh, StatusCriticalHigh:
		return "high"
	case StatusAbnormal:
		return "abnormal"
	default:
		return ""
	}
}

// Range is one reference band. Critical thresholds are optional; a nil
// threshold means the parameter has no panic value in that direction.
type Range struct {
	Low          float64  `json:"low"`
	High         float64  `json:"high"`
	CriticalLow  *float64 `json:"critical_low,omitempty"`
	CriticalHigh *float64 `json:"critical_high,omitempty"`
	Unit         string   `json:"unit,omitempty"`
}

// NewRange builds a reference band without critical thresholds.
func NewRange(low, high float64, unit string) *Range {
	return &Range{Low: low, High: high, Unit: unit}
}

// WithCritical attaches critical thresholds and returns the range.
func (r *Range) WithCritical(low, high float64) *Range {
	r.CriticalLow = &low
	r.CriticalHigh = &high
	return r
}

// RangeTable holds the per-sex bands for one parameter. Default is used
// when the patient's sex is unknown or the parameter is not sex-specific.
type RangeTable struct {
	Male    *Range
	Female  *Range
	Default *Range
}

// Shared wraps a single band that applies regardless of sex.
func Shared(r *Range) RangeTable {
	return RangeTable{Default: r}
}

// BySex wraps male/female bands with a fallback default band.
func BySex(male, female, def *Range) RangeTable {
	return RangeTable{Male: male, Female: female, Default: def}
}

// ForSex resolves the band for a patient.
func (t RangeTable) ForSex(sex Sex) *Range {
	switch sex {
	case SexMale:
		if t.Male != nil {
			return t.Male
		}
	case SexFemale:
		if t.Female != nil {
			return t.Female
		}
	}
	return t.Default
}

// Classify grades a value against a band. Critical thresholds win over the
// ordinary bounds. A nil band classifies as unknown.
func Classify(value float64, r *Range) Status {
	if r == nil {
		return StatusUnknown
	}
	if r.CriticalLow != nil && value < *r.CriticalLow {
		return StatusCriticalLow
	}
	if r.CriticalHigh != nil && value > *r.CriticalHigh {
		return StatusCriticalHigh
	}
	if value < r.Low {
		return StatusLow
	}
	if value > r.High {
		return StatusHigh
	}
	return StatusNormal
}

// ClassifyDesirable grades against bands whose lower bound is a treatment
// target rather than a physiologic floor (lipids, tumor markers). High is
// checked first and low is flagged only when the band's floor is above zero.
func ClassifyDesirable(value float64, r *Range) Status {
	if r == nil {
		return StatusUnknown
	}
	if r.CriticalHigh != nil && value > *r.CriticalHigh {
		return StatusCriticalHigh
	}
	if r.CriticalLow != nil && value < *r.CriticalLow {
		return StatusCriticalLow
	}
	if value > r.High {
		return StatusHigh
	}
	if r.Low > 0 && value < r.Low {
		return StatusLow
	}
	return StatusNormal
}
