package interp

// Quality check severities.
const (
	SeverityPass    = "pass"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Differential is one candidate condition for an abnormal finding.
type Differential struct {
	Condition  string `json:"condition"`
	Discussion string `json:"discussion"`
}

// DifferentialSet groups the differentials for one parameter in one
// direction under a clinical heading ("Anemia", "Thrombocytosis").
type DifferentialSet struct {
	Title         string         `json:"title"`
	Differentials []Differential `json:"differentials"`
}

// QualityCheck is the outcome of one internal-consistency rule run against
// the sample, such as the Rule of Threes.
type QualityCheck struct {
	Rule           string `json:"rule"`
	Severity       string `json:"severity"`
	Expected       string `json:"expected,omitempty"`
	Actual         string `json:"actual,omitempty"`
	Deviation      string `json:"deviation,omitempty"`
	Interpretation string `json:"interpretation"`
}

// Index is a value derived from the measured parameters (anion gap,
// HOMA-IR, free/total PSA ratio).
type Index struct {
	Value          Value  `json:"value"`
	Formula        string `json:"formula"`
	Interpretation string `json:"interpretation"`
	Note           string `json:"note,omitempty"`
}

// Classification carries the status plus the band it was graded against so
// clients can render the reference interval alongside the value.
type Classification struct {
	Status Status `json:"status"`
	Range  *Range `json:"range,omitempty"`
}

// ParameterResult is the full per-parameter outcome.
type ParameterResult struct {
	Value          Value            `json:"value"`
	Classification Classification   `json:"classification"`
	Differential   *DifferentialSet `json:"differential,omitempty"`
	Learning       string           `json:"learning,omitempty"`
}

// Abnormality is a flagged parameter with its differential, listed in the
// order parameters were evaluated.
type Abnormality struct {
	Parameter      string           `json:"parameter"`
	Classification Status           `json:"classification"`
	Differential   *DifferentialSet `json:"differential,omitempty"`
}

// CriticalValue is a panic-threshold crossing that warrants an alert.
type CriticalValue struct {
	Parameter string  `json:"parameter"`
	Value     float64 `json:"value"`
	Status    Status  `json:"status"`
	Message   string  `json:"message"`
}

// Result is the aggregate interpretation of one panel.
type Result struct {
	Panel              string                     `json:"panel"`
	Parameters         map[string]ParameterResult `json:"parameters"`
	Abnormalities      []Abnormality              `json:"abnormalities"`
	CriticalValues     []CriticalValue            `json:"critical_values"`
	QualityChecks      []QualityCheck             `json:"quality_checks"`
	CalculatedIndices  map[string]Index           `json:"calculated_indices"`
	TotalParameters    int                        `json:"total_parameters"`
	AbnormalCount      int                        `json:"abnormal_count"`
	CriticalCount      int                        `json:"critical_count"`
	PatternSummary     string                     `json:"pattern_summary,omitempty"`
	EducationalContent []string                   `json:"educational_content,omitempty"`
	Recommendations    []string                   `json:"recommendations,omitempty"`
}

// AddIndex records a calculated index under its display name.
func (r *Result) AddIndex(name string, idx Index) {
	if r.CalculatedIndices == nil {
		r.CalculatedIndices = make(map[string]Index)
	}
	r.CalculatedIndices[name] = idx
}

// AddQualityCheck appends a consistency-rule outcome.
func (r *Result) AddQualityCheck(qc QualityCheck) {
	r.QualityChecks = append(r.QualityChecks, qc)
}

// Status returns the classification of a parameter, or unknown if the
// parameter was not part of this result.
func (r *Result) Status(param string) Status {
	pr, ok := r.Parameters[param]
	if !ok {
		return StatusUnknown
	}
	return pr.Classification.Status
}

// Num returns the numeric value of a parameter if it was reported.
func (r *Result) Num(param string) (float64, bool) {
	pr, ok := r.Parameters[param]
	if !ok {
		return 0, false
	}
	return pr.Value.Float()
}
