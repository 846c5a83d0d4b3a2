package interp

import (
	"fmt"
	"sort"
	"strings"
)

// Config drives the shared per-parameter evaluation pass for one panel.
type Config struct {
	// Panel is the display name stamped onto the result.
	Panel string
	// Ranges holds the quantitative reference bands.
	Ranges map[string]RangeTable
	// Qualitative maps qualitative parameters to the substrings accepted
	// as normal ("negative", "nil", "absent").
	Qualitative map[string][]string
	// Positive maps qualitative parameters to the substrings flagged as
	// abnormal ("positive", "detected", "reactive"). Anything else is
	// normal. Serology results report this way.
	Positive map[string][]string
	// Differentials maps parameter -> direction (low/high/abnormal) to the
	// differential set attached to flagged findings.
	Differentials map[string]map[string]DifferentialSet
	// Learning holds optional per-parameter teaching text.
	Learning map[string]string
	// Desirable switches to ClassifyDesirable for target-floor bands.
	Desirable bool
	// AbnormalAs overrides the differential direction used for qualitative
	// abnormals. Serology panels key their tables under "high".
	AbnormalAs string
}

// Evaluate classifies every supplied value for one panel and aggregates the
// findings. Parameters without a configured band classify as unknown.
// Parameter order is alphabetical so results are deterministic.
func Evaluate(cfg Config, values map[string]Value, sex Sex) *Result {
	res := &Result{
		Panel:      cfg.Panel,
		Parameters: make(map[string]ParameterResult, len(values)),
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := values[name]
		pr := ParameterResult{Value: v, Learning: cfg.Learning[name]}

		if num, ok := v.Float(); ok {
			band := cfg.Ranges[name].ForSex(sex)
			status := Classify(num, band)
			if cfg.Desirable {
				status = ClassifyDesirable(num, band)
			}
			pr.Classification = Classification{Status: status, Range: band}
			if status.IsCritical() {
				res.CriticalValues = append(res.CriticalValues, criticalValue(name, num, status, band))
			}
		} else if normals, ok := cfg.Qualitative[name]; ok {
			pr.Classification = Classification{Status: classifyQualitative(v.String(), normals)}
		} else if positives, ok := cfg.Positive[name]; ok {
			pr.Classification = Classification{Status: classifyPositive(v.String(), positives)}
		} else {
			pr.Classification = Classification{Status: StatusUnknown}
		}

		status := pr.Classification.Status
		if status.IsAbnormal() {
			pr.Differential = cfg.differential(name, status)
			res.Abnormalities = append(res.Abnormalities, Abnormality{
				Parameter:      name,
				Classification: status,
				Differential:   pr.Differential,
			})
			res.AbnormalCount++
		}
		res.Parameters[name] = pr
	}

	res.TotalParameters = len(res.Parameters)
	res.CriticalCount = len(res.CriticalValues)
	return res
}

func (cfg Config) differential(param string, status Status) *DifferentialSet {
	dirs, ok := cfg.Differentials[param]
	if !ok {
		return nil
	}
	dir := status.Direction()
	if dir == "abnormal" && cfg.AbnormalAs != "" {
		dir = cfg.AbnormalAs
	}
	if set, ok := dirs[dir]; ok {
		return &set
	}
	return nil
}

func classifyQualitative(value string, normals []string) Status {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return StatusUnknown
	}
	for _, n := range normals {
		if strings.Contains(v, n) {
			return StatusNormal
		}
	}
	return StatusAbnormal
}

func classifyPositive(value string, positives []string) Status {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return StatusUnknown
	}
	for _, p := range positives {
		if strings.Contains(v, p) {
			return StatusAbnormal
		}
	}
	return StatusNormal
}

func criticalValue(param string, num float64, status Status, band *Range) CriticalValue {
	cv := CriticalValue{Parameter: param, Value: num, Status: status}
	unit := ""
	if band.Unit != "" {
		unit = " " + band.Unit
	}
	if status == StatusCriticalLow {
		cv.Message = fmt.Sprintf("%s%s is below the critical threshold of %s%s",
			FormatNum(num), unit, FormatNum(*band.CriticalLow), unit)
	} else {
		cv.Message = fmt.Sprintf("%s%s is above the critical threshold of %s%s",
			FormatNum(num), unit, FormatNum(*band.CriticalHigh), unit)
	}
	return cv
}
