package liver

import "github.com/bloodlens/bloodlens/internal/interp"

var referenceRanges = map[string]interp.RangeTable{
	"ALT": {
		Male:    interp.NewRange(0, 33, "IU/L"),
		Female:  interp.NewRange(0, 25, "IU/L"),
		Default: interp.NewRange(0, 33, "IU/L"),
	},
	"AST": {
		Male:    interp.NewRange(0, 40, "IU/L"),
		Female:  interp.NewRange(0, 32, "IU/L"),
		Default: interp.NewRange(0, 40, "IU/L"),
	},
	"ALP":              interp.Shared(interp.NewRange(30, 120, "IU/L")),
	"Total_Bilirubin":  interp.Shared(interp.NewRange(0.3, 1.0, "mg/dL")),
	"Direct_Bilirubin": interp.Shared(interp.NewRange(0.0, 0.3, "mg/dL")),
	"Albumin":          interp.Shared(interp.NewRange(3.3, 5.5, "g/dL")),
	"PT":               interp.Shared(interp.NewRange(11.0, 13.0, "seconds")),
	"INR":              interp.Shared(interp.NewRange(0.8, 1.1, "")),
	"GGT": {
		Male:    interp.NewRange(0, 60, "IU/L"),
		Female:  interp.NewRange(0, 40, "IU/L"),
		Default: interp.NewRange(0, 60, "IU/L"),
	},
}

// Upper limits of normal used by the R value and severity grading.
func altULN(sex interp.Sex) float64 {
	if sex == interp.SexFemale {
		return 25
	}
	return 33
}

func astULN(sex interp.Sex) float64 {
	if sex == interp.SexFemale {
		return 32
	}
	return 40
}

const alpULN = 120
