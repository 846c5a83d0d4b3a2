package hematology

import "github.com/bloodlens/bloodlens/internal/interp"

// Adult reference ranges with panic thresholds.
var referenceRanges = map[string]interp.RangeTable{
	"RBC": interp.BySex(
		interp.NewRange(4.5, 5.5, "x10^12/L").WithCritical(2.0, 8.0),
		interp.NewRange(4.0, 5.0, "x10^12/L").WithCritical(2.0, 8.0),
		interp.NewRange(4.0, 5.5, "x10^12/L").WithCritical(2.0, 8.0),
	),
	"Hemoglobin": interp.BySex(
		interp.NewRange(13.5, 17.5, "g/dL").WithCritical(7.0, 20.0),
		interp.NewRange(12.0, 16.0, "g/dL").WithCritical(7.0, 20.0),
		interp.NewRange(12.0, 17.5, "g/dL").WithCritical(7.0, 20.0),
	),
	"Hematocrit": interp.BySex(
		interp.NewRange(38.3, 48.6, "%").WithCritical(20.0, 60.0),
		interp.NewRange(35.5, 44.9, "%").WithCritical(20.0, 60.0),
		interp.NewRange(35.5, 48.6, "%").WithCritical(20.0, 60.0),
	),
	"MCV":    interp.Shared(interp.NewRange(80.0, 100.0, "fL").WithCritical(50.0, 130.0)),
	"MCH":    interp.Shared(interp.NewRange(27.0, 33.0, "pg").WithCritical(15.0, 45.0)),
	"MCHC":   interp.Shared(interp.NewRange(32.0, 36.0, "g/dL").WithCritical(25.0, 40.0)),
	"RDW":    interp.Shared(interp.NewRange(11.5, 14.5, "%").WithCritical(8.0, 30.0)),
	"RDW_SD": interp.Shared(interp.NewRange(35.0, 56.0, "fL").WithCritical(25.0, 80.0)),
	"WBC":    interp.Shared(interp.NewRange(4.0, 11.0, "x10^9/L").WithCritical(1.0, 30.0)),

	"Neutrophils": interp.Shared(interp.NewRange(40.0, 70.0, "%").WithCritical(5.0, 95.0)),
	"Lymphocytes": interp.Shared(interp.NewRange(20.0, 40.0, "%").WithCritical(3.0, 80.0)),
	"Monocytes":   interp.Shared(interp.NewRange(2.0, 8.0, "%").WithCritical(0.0, 25.0)),
	"Eosinophils": interp.Shared(interp.NewRange(1.0, 4.0, "%").WithCritical(0.0, 30.0)),
	"Basophils":   interp.Shared(interp.NewRange(0.0, 1.0, "%").WithCritical(0.0, 10.0)),

	"Platelets":     interp.Shared(interp.NewRange(150.0, 400.0, "x10^9/L").WithCritical(20.0, 1000.0)),
	"MPV":           interp.Shared(interp.NewRange(7.5, 12.5, "fL").WithCritical(5.0, 15.0)),
	"PDW":           interp.Shared(interp.NewRange(9.0, 17.0, "fL").WithCritical(5.0, 25.0)),
	"Reticulocytes": interp.Shared(interp.NewRange(0.5, 2.5, "%").WithCritical(0.0, 15.0)),
	"ESR": interp.BySex(
		interp.NewRange(0.0, 15.0, "mm/hr").WithCritical(0.0, 100.0),
		interp.NewRange(0.0, 20.0, "mm/hr").WithCritical(0.0, 100.0),
		interp.NewRange(0.0, 20.0, "mm/hr").WithCritical(0.0, 100.0),
	),
	"ANC": interp.Shared(interp.NewRange(1.5, 8.0, "x10^9/L").WithCritical(0.5, 20.0)),
	"ALC": interp.Shared(interp.NewRange(1.0, 4.0, "x10^9/L").WithCritical(0.2, 15.0)),
}
