package kidney

import "github.com/bloodlens/bloodlens/internal/interp"

var differentials = map[string]map[string]interp.DifferentialSet{
	"Creatinine": {
		"high": {
			Title: "Elevated Creatinine",
			Differentials: []interp.Differential{
				{Condition: "Acute Kidney Injury (AKI)", Discussion: "Rapid rise in creatinine over hours-days. Prerenal (dehydration, heart failure), intrinsic (ATN, glomerulonephritis), or postrenal (obstruction). Check urine output, fractional excretion of sodium."},
				{Condition: "Chronic Kidney Disease (CKD)", Discussion: "Gradual elevation with reduced eGFR. Stages 1-5 based on GFR. Most common causes: diabetes, hypertension. Check urine albumin/creatinine ratio, renal ultrasound."},
				{Condition: "Dehydration/Prerenal", Discussion: "BUN/Creatinine ratio >20:1 suggests prerenal etiology. Responds to IV fluids."},
				{Condition: "Medications", Discussion: "NSAIDs, ACE inhibitors, ARBs, aminoglycosides, contrast dye can elevate creatinine. Some drugs (trimethoprim, cimetidine) inhibit tubular secretion of creatinine without true GFR reduction."},
				{Condition: "Rhabdomyolysis", Discussion: "Massive muscle breakdown releases myoglobin. Check CK (markedly elevated), urine myoglobin. Dark urine. Risk of AKI."},
			},
		},
	},
	"BUN": {
		"high": {
			Title: "Elevated BUN",
			Differentials: []interp.Differential{
				{Condition: "Prerenal Azotemia", Discussion: "BUN rises disproportionately to creatinine (ratio >20:1). Dehydration, CHF, GI bleeding (protein load)."},
				{Condition: "GI Bleeding", Discussion: "Blood in GI tract is digested as protein, increasing BUN. BUN/Cr ratio often >30:1."},
				{Condition: "High Protein Diet/Catabolism", Discussion: "Increased protein intake, burns, sepsis, corticosteroids increase urea production."},
				{Condition: "Renal Failure", Discussion: "Both BUN and creatinine rise proportionally in intrinsic renal disease."},
			},
		},
	},
	"Sodium": {
		"low": {
			Title: "Hyponatremia (<136 mEq/L)",
			Differentials: []interp.Differential{
				{Condition: "SIADH", Discussion: "Euvolemic hyponatremia. Common causes: CNS disease, pulmonary disease, medications (SSRIs, carbamazepine). Check urine osmolality (>100), urine sodium (>40)."},
				{Condition: "Heart Failure/Cirrhosis", Discussion: "Hypervolemic hyponatremia. Dilutional due to fluid retention despite total body sodium excess."},
				{Condition: "Diuretic Use", Discussion: "Thiazides are the most common medication cause. Hypovolemic hyponatremia."},
				{Condition: "Hypothyroidism/Adrenal Insufficiency", Discussion: "Endocrine causes. Check TSH, morning cortisol."},
				{Condition: "Psychogenic Polydipsia", Discussion: "Excessive water intake overwhelming renal diluting capacity."},
			},
		},
		"high": {
			Title: "Hypernatremia (>145 mEq/L)",
			Differentials: []interp.Differential{
				{Condition: "Dehydration/Water Loss", Discussion: "Most common cause. Inadequate water intake, insensible losses, diarrhea. Free water deficit calculation needed."},
				{Condition: "Diabetes Insipidus", Discussion: "Central (lack of ADH) or nephrogenic (resistance to ADH). Large volumes of dilute urine. Water deprivation test for diagnosis."},
				{Condition: "Osmotic Diuresis", Discussion: "Hyperglycemia, mannitol, urea cause water loss exceeding sodium loss."},
			},
		},
	},
	"Potassium": {
		"low": {
			Title: "Hypokalemia (<3.5 mEq/L)",
			Differentials: []interp.Differential{
				{Condition: "GI Losses", Discussion: "Diarrhea, vomiting, NG suction. Check urine potassium to differentiate renal vs extrarenal losses."},
				{Condition: "Diuretic Use", Discussion: "Loop and thiazide diuretics cause renal potassium wasting. Check urine K >20 mEq/L."},
				{Condition: "Renal Tubular Acidosis", Discussion: "Types I and II cause hypokalemia. Check arterial blood gas, urine pH."},
				{Condition: "Hyperaldosteronism", Discussion: "Primary (Conn syndrome) or secondary. Hypertension + hypokalemia + metabolic alkalosis. Check aldosterone/renin ratio."},
			},
		},
		"high": {
			Title: "Hyperkalemia (>5.0 mEq/L)",
			Differentials: []interp.Differential{
				{Condition: "Pseudohyperkalemia", Discussion: "Hemolyzed sample, fist clenching, prolonged tourniquet. ALWAYS rule out first. Repeat with proper technique."},
				{Condition: "Renal Failure", Discussion: "Most common true cause. Reduced renal excretion. Critical when >6.0: ECG changes, cardiac arrest risk."},
				{Condition: "Medications", Discussion: "ACE inhibitors, ARBs, spironolactone, NSAIDs, trimethoprim, heparin."},
				{Condition: "Acidosis", Discussion: "Metabolic acidosis causes transcellular shift of K+ out of cells. DKA is a classic cause."},
				{Condition: "Tissue Destruction", Discussion: "Rhabdomyolysis, tumor lysis syndrome, massive hemolysis, burns."},
			},
		},
	},
	"Calcium": {
		"high": {
			Title: "Hypercalcemia",
			Differentials: []interp.Differential{
				{Condition: "Primary Hyperparathyroidism", Discussion: "Most common outpatient cause. Elevated PTH with elevated calcium. Parathyroid adenoma (85%)."},
				{Condition: "Malignancy", Discussion: "Most common inpatient cause. PTHrP-mediated (squamous cell, renal, breast) or osteolytic metastases (myeloma, breast). Check PTHrP, PTH."},
				{Condition: "Vitamin D Excess", Discussion: "Granulomatous disease (sarcoidosis, TB) or exogenous. Check 25-OH and 1,25-OH vitamin D."},
				{Condition: "Thiazide Diuretics", Discussion: "Decrease renal calcium excretion."},
			},
		},
		"low": {
			Title: "Hypocalcemia",
			Differentials: []interp.Differential{
				{Condition: "Hypoparathyroidism", Discussion: "Post-surgical (most common), autoimmune. Low PTH with low calcium."},
				{Condition: "Vitamin D Deficiency", Discussion: "Inadequate sun exposure, malabsorption. Low 25-OH vitamin D. Secondary hyperparathyroidism."},
				{Condition: "Chronic Kidney Disease", Discussion: "Reduced 1,25-OH vitamin D production, hyperphosphatemia."},
				{Condition: "Hypoalbuminemia", Discussion: "Corrected calcium = measured Ca + 0.8 x (4.0 - albumin). Ionized calcium may be normal."},
			},
		},
	},
	"eGFR": {
		"low": {
			Title: "Reduced eGFR",
			Differentials: []interp.Differential{
				{Condition: "CKD Stage 3a (45-59)", Discussion: "Mildly to moderately decreased. Monitor every 3-6 months. Control BP, glucose. Avoid nephrotoxins."},
				{Condition: "CKD Stage 3b (30-44)", Discussion: "Moderately to severely decreased. Nephrology referral. Monitor for complications (anemia, bone disease)."},
				{Condition: "CKD Stage 4 (15-29)", Discussion: "Severely decreased. Prepare for renal replacement therapy. AV fistula planning."},
				{Condition: "CKD Stage 5 (<15)", Discussion: "Kidney failure. Dialysis or transplant needed. Urgent nephrology management."},
			},
		},
	},
	"Uric_Acid": {
		"high": {
			Title: "Hyperuricemia",
			Differentials: []interp.Differential{
				{Condition: "Gout", Discussion: "Crystal arthropathy. Monosodium urate crystals in joint fluid. Acute flares, tophi. Not all hyperuricemia causes gout."},
				{Condition: "Renal Disease", Discussion: "Decreased renal excretion is the most common cause of hyperuricemia."},
				{Condition: "Tumor Lysis Syndrome", Discussion: "Massive cell turnover releases purines. Usually post-chemotherapy. Check K+, phosphorus, calcium, LDH."},
				{Condition: "Metabolic Syndrome", Discussion: "Associated with insulin resistance, hypertension, dyslipidemia."},
			},
		},
	},
}
