package kidney

import "github.com/bloodlens/bloodlens/internal/interp"

var referenceRanges = map[string]interp.RangeTable{
	"Creatinine": interp.BySex(
		interp.NewRange(0.7, 1.3, "mg/dL").WithCritical(0.3, 10.0),
		interp.NewRange(0.6, 1.1, "mg/dL").WithCritical(0.3, 10.0),
		interp.NewRange(0.6, 1.3, "mg/dL").WithCritical(0.3, 10.0),
	),
	"BUN":  interp.Shared(interp.NewRange(7, 20, "mg/dL").WithCritical(2, 100)),
	"Urea": interp.Shared(interp.NewRange(15, 45, "mg/dL").WithCritical(5, 200)),
	"Uric_Acid": interp.BySex(
		interp.NewRange(3.5, 7.2, "mg/dL").WithCritical(1.0, 15.0),
		interp.NewRange(2.5, 6.0, "mg/dL").WithCritical(1.0, 15.0),
		interp.NewRange(2.5, 7.2, "mg/dL").WithCritical(1.0, 15.0),
	),
	"eGFR":        interp.Shared(interp.NewRange(90, 120, "mL/min/1.73m2").WithCritical(15, 200)),
	"Cystatin_C":  interp.Shared(interp.NewRange(0.55, 1.15, "mg/L").WithCritical(0.2, 5.0)),
	"Sodium":      interp.Shared(interp.NewRange(136, 145, "mEq/L").WithCritical(120, 160)),
	"Potassium":   interp.Shared(interp.NewRange(3.5, 5.0, "mEq/L").WithCritical(2.5, 6.5)),
	"Chloride":    interp.Shared(interp.NewRange(98, 106, "mEq/L").WithCritical(80, 120)),
	"Bicarbonate": interp.Shared(interp.NewRange(22, 29, "mEq/L").WithCritical(10, 40)),
	"Calcium":     interp.Shared(interp.NewRange(8.5, 10.5, "mg/dL").WithCritical(6.0, 14.0)),
	"Phosphorus":  interp.Shared(interp.NewRange(2.5, 4.5, "mg/dL").WithCritical(1.0, 8.0)),
	"Magnesium":   interp.Shared(interp.NewRange(1.7, 2.2, "mg/dL").WithCritical(1.0, 4.0)),
}

var learning = map[string]string{
	"Creatinine": "Creatinine is produced from muscle metabolism at a constant rate. It is freely filtered by the glomerulus and not reabsorbed. Serum creatinine is inversely related to GFR but is an insensitive marker: GFR must decline ~50% before creatinine rises above normal. Muscle mass, diet (cooked meat), and certain drugs affect levels independently of GFR.",
	"BUN":        "Blood Urea Nitrogen reflects both renal function and protein metabolism. Unlike creatinine, BUN is reabsorbed in the collecting duct (enhanced by ADH). The BUN/Creatinine ratio is diagnostically valuable: >20:1 suggests prerenal disease or GI bleeding; <10:1 suggests liver disease or malnutrition.",
	"eGFR":       "Estimated GFR is calculated using the CKD-EPI equation (2021 race-free equation) from creatinine, age, and sex. It is more sensitive than creatinine alone for detecting early CKD. CKD is defined as eGFR <60 for >=3 months. Staging: G1 >=90, G2 60-89, G3a 45-59, G3b 30-44, G4 15-29, G5 <15.",
	"Sodium":     "Sodium is the primary determinant of serum osmolality and ECF volume. Hyponatremia is the most common electrolyte disorder in hospitalized patients. Always assess volume status first (hypovolemic vs euvolemic vs hypervolemic). Rapid correction risks osmotic demyelination syndrome: correct <=8 mEq/L per 24 hours.",
	"Potassium":  "Potassium is the major intracellular cation. 98% is intracellular. Small changes in serum K+ have major effects on cardiac conduction. Hyperkalemia >6.0 is a medical emergency: check ECG for peaked T waves, widened QRS, sine wave pattern. Treatment: calcium gluconate (cardioprotection), insulin+glucose, kayexalate, dialysis.",
	"Calcium":    "Total calcium includes protein-bound (40%), complexed (10%), and ionized/free (50%). Only ionized calcium is physiologically active. Always correct for albumin: corrected Ca = measured Ca + 0.8 x (4.0 - albumin). Calcium homeostasis involves PTH, vitamin D, and calcitonin.",
	"Phosphorus": "Phosphorus is inversely related to calcium via PTH. In CKD, phosphorus rises as GFR falls, stimulating PTH (secondary hyperparathyroidism) and contributing to renal osteodystrophy. Acute severe hypophosphatemia (<1.0) can cause rhabdomyolysis, respiratory failure, and cardiac dysfunction.",
	"Magnesium":  "Magnesium is often the forgotten electrolyte. Hypomagnesemia causes refractory hypokalemia and hypocalcemia: always check Mg when K or Ca are low and not responding to replacement. Common causes: alcoholism, diuretics, PPI use, diarrhea.",
}
