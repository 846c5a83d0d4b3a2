package liver

import "github.com/bloodlens/bloodlens/internal/interp"

// Differentials are keyed by injury pattern rather than by parameter; the
// pattern set is attached to the enzymes driving it.
var patternDifferentials = map[string]interp.DifferentialSet{
	"hepatocellular": {
		Title: "Hepatocellular Injury Pattern (R >= 5)",
		Differentials: []interp.Differential{
			{Condition: "Viral Hepatitis (A, B, C, E)", Discussion: "Most common infectious cause of hepatocellular injury worldwide. ALT is typically higher than AST. Acute hepatitis A/E: often self-limited. Hepatitis B/C: can become chronic. Order: HBsAg, anti-HBc IgM, anti-HCV, anti-HAV IgM, anti-HEV IgM."},
			{Condition: "Drug-Induced Liver Injury (DILI)", Discussion: "Acetaminophen is the most common cause of acute liver failure. Many drugs and supplements can cause hepatocellular injury. Detailed medication and supplement history is essential. Causality assessment using RUCAM score. Acetaminophen level if overdose suspected."},
			{Condition: "Alcoholic Liver Disease", Discussion: "AST/ALT ratio >2:1 is characteristic. AST rarely exceeds 300 IU/L in isolated alcoholic hepatitis. GGT is usually markedly elevated. Assess for Maddrey discriminant function if alcoholic hepatitis suspected."},
			{Condition: "Non-Alcoholic Fatty Liver Disease (NAFLD/NASH)", Discussion: "Most common cause of chronic transaminase elevation in Western countries. Associated with metabolic syndrome, obesity, diabetes. ALT usually > AST. Ultrasound may show hepatic steatosis. FIB-4 or NAFLD Fibrosis Score for risk stratification."},
			{Condition: "Autoimmune Hepatitis", Discussion: "Predominantly affects women. Check ANA, ASMA, anti-LKM1, IgG levels. Can present acutely or chronically. Liver biopsy often needed for definitive diagnosis. Responds to immunosuppression."},
			{Condition: "Wilson Disease", Discussion: "Consider in patients <40 years. Low ceruloplasmin, high 24-hour urine copper, Kayser-Fleischer rings on slit lamp exam. AST/ALT ratio may be >2:1 with ALP/bilirubin ratio <4 in acute Wilson disease."},
			{Condition: "Hemochromatosis", Discussion: "Hereditary iron overload. Elevated ferritin and transferrin saturation (>45%). HFE gene testing (C282Y, H63D). Liver biopsy or MRI for iron quantification."},
			{Condition: "Ischemic Hepatitis (Shock Liver)", Discussion: "Massive transaminase elevation (often >1000 IU/L) following hypotension or cardiac failure. LDH is markedly elevated. ALT/LDH ratio <1.5. Rapid improvement with hemodynamic support."},
		},
	},
	"cholestatic": {
		Title: "Cholestatic Injury Pattern (R <= 2)",
		Differentials: []interp.Differential{
			{Condition: "Choledocholithiasis (Common Bile Duct Stones)", Discussion: "Most common cause of extrahepatic cholestasis. RUQ ultrasound is first-line imaging. Dilated bile ducts on ultrasound warrant MRCP or ERCP. May present with Charcot triad (fever, jaundice, RUQ pain) or Reynold pentad (+ hypotension, altered mental status)."},
			{Condition: "Primary Biliary Cholangitis (PBC)", Discussion: "Autoimmune destruction of intrahepatic bile ducts. Anti-mitochondrial antibody (AMA) is diagnostic (>95% specific). Predominantly affects middle-aged women. IgM elevated. Treatment: ursodeoxycholic acid (UDCA)."},
			{Condition: "Primary Sclerosing Cholangitis (PSC)", Discussion: "Chronic cholestatic disease with strictures and dilatation of bile ducts. MRCP shows a beading pattern. Strong association with IBD (especially ulcerative colitis). p-ANCA may be positive. Increased risk of cholangiocarcinoma."},
			{Condition: "Pancreatic Head Mass / Cholangiocarcinoma", Discussion: "Painless jaundice in older adults should raise concern for malignancy. CT abdomen with contrast or MRCP for evaluation. CA 19-9 may be elevated. ERCP for tissue diagnosis and stenting."},
			{Condition: "Drug-Induced Cholestasis", Discussion: "Many drugs can cause cholestatic injury: amoxicillin-clavulanate, oral contraceptives, anabolic steroids, erythromycin, chlorpromazine. Usually resolves after drug withdrawal."},
			{Condition: "Intrahepatic Cholestasis of Pregnancy", Discussion: "Pruritus and elevated bile acids in the third trimester. Risk of fetal complications. Treatment: UDCA. Delivery typically recommended at 36-37 weeks."},
		},
	},
	"mixed": {
		Title: "Mixed Injury Pattern (R 2-5)",
		Differentials: []interp.Differential{
			{Condition: "Drug-Induced Liver Injury (Mixed Pattern)", Discussion: "Many drugs produce a mixed hepatocellular-cholestatic pattern. Phenytoin, sulfonamides, and amoxicillin-clavulanate are common culprits. Assess with RUCAM score."},
			{Condition: "Granulomatous Hepatitis", Discussion: "Causes include sarcoidosis, tuberculosis, fungal infections, drug reactions. Mixed pattern on LFTs. Liver biopsy shows granulomas."},
			{Condition: "Autoimmune Hepatitis with Cholestatic Features", Discussion: "Overlap syndromes (AIH-PBC, AIH-PSC) can present with mixed pattern. Check ANA, ASMA, AMA. Liver biopsy often necessary for classification."},
			{Condition: "Infiltrative Liver Disease", Discussion: "Lymphoma, amyloidosis, sarcoidosis can infiltrate the liver causing mixed injury pattern. Imaging and liver biopsy for diagnosis."},
		},
	},
	"isolated_hyperbilirubinemia": {
		Title: "Isolated Hyperbilirubinemia",
		Differentials: []interp.Differential{
			{Condition: "Gilbert Syndrome", Discussion: "Most common hereditary hyperbilirubinemia (affects ~5-10% of population). Unconjugated (indirect) hyperbilirubinemia with normal liver enzymes and CBC. Bilirubin typically <3 mg/dL. Worsens with fasting, stress, illness. Benign condition requiring no treatment."},
			{Condition: "Hemolytic Anemia", Discussion: "Unconjugated hyperbilirubinemia from increased RBC destruction. Check: reticulocyte count, LDH (elevated), haptoglobin (low), peripheral smear, direct Coombs test. Many causes: autoimmune, microangiopathic, hereditary (spherocytosis, G6PD, sickle cell)."},
			{Condition: "Crigler-Najjar Syndrome", Discussion: "Type I: severe unconjugated hyperbilirubinemia (>20 mg/dL), absent UGT1A1 activity. Type II: moderate elevation (6-20 mg/dL), responds to phenobarbital. Rare genetic disorder."},
			{Condition: "Dubin-Johnson / Rotor Syndrome", Discussion: "Conjugated (direct) hyperbilirubinemia with normal enzymes. Benign hereditary conditions. Dubin-Johnson: black pigmented liver. Rotor: no liver pigmentation. No treatment needed."},
			{Condition: "Ineffective Erythropoiesis", Discussion: "Conditions like megaloblastic anemia, thalassemia, or myelodysplastic syndrome can cause unconjugated hyperbilirubinemia from destruction of RBC precursors in the marrow."},
		},
	},
}
