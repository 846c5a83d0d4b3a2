package hematology

import "github.com/bloodlens/bloodlens/internal/interp"

var differentials = map[string]map[string]interp.DifferentialSet{
	"RBC": {
		"low": {
			Title: "Decreased RBC Count (Anemia)",
			Differentials: []interp.Differential{
				{Condition: "Iron Deficiency Anemia", Discussion: "Most common cause worldwide. Microcytic, hypochromic RBCs. Low MCV, MCH, MCHC, elevated RDW. Check ferritin and iron studies."},
				{Condition: "Vitamin B12/Folate Deficiency", Discussion: "Megaloblastic anemia with high MCV. Hypersegmented neutrophils. Check B12, folate, methylmalonic acid."},
				{Condition: "Anemia of Chronic Disease (ACD/AI)", Discussion: "Second most common. Usually normocytic. Ferritin normal/elevated. Low serum iron, low TIBC."},
				{Condition: "Hemolytic Anemia", Discussion: "Premature RBC destruction. Elevated reticulocytes, LDH, indirect bilirubin. Low haptoglobin."},
				{Condition: "Aplastic Anemia", Discussion: "Bone marrow failure with pancytopenia. Low reticulocyte count. Requires bone marrow biopsy."},
				{Condition: "Thalassemia", Discussion: "Inherited globin synthesis disorder. Microcytic with relatively high RBC count. Hemoglobin electrophoresis diagnostic."},
				{Condition: "Chronic Kidney Disease", Discussion: "Decreased erythropoietin production. Usually normocytic. Check renal function."},
				{Condition: "Myelodysplastic Syndrome (MDS)", Discussion: "Clonal disorder with ineffective hematopoiesis. Often macrocytic. Bone marrow biopsy required."},
			},
		},
		"high": {
			Title: "Elevated RBC Count (Erythrocytosis/Polycythemia)",
			Differentials: []interp.Differential{
				{Condition: "Polycythemia Vera", Discussion: "Myeloproliferative neoplasm. JAK2 V617F mutation in ~95%. Risk of thrombosis."},
				{Condition: "Secondary Polycythemia", Discussion: "Reactive from chronic hypoxia (COPD, sleep apnea, high altitude), EPO-secreting tumors."},
				{Condition: "Dehydration", Discussion: "Decreased plasma volume causes apparent increase. Resolves with hydration."},
				{Condition: "Thalassemia Trait", Discussion: "Elevated RBC with low MCV and low-normal Hb. Mentzer index (MCV/RBC) <13."},
			},
		},
	},
	"Hemoglobin": {
		"low": {
			Title: "Low Hemoglobin (Anemia)",
			Differentials: []interp.Differential{
				{Condition: "Iron Deficiency Anemia", Discussion: "Most common cause globally. Fatigue, pallor, dyspnea. Check ferritin, iron studies."},
				{Condition: "Hemorrhage (Acute or Chronic)", Discussion: "Acute blood loss dilutional effect takes 24-48 hrs. Chronic loss causes iron deficiency."},
				{Condition: "Hemoglobinopathies", Discussion: "Sickle cell, thalassemias. Hemoglobin electrophoresis or HPLC diagnostic."},
				{Condition: "Bone Marrow Infiltration", Discussion: "Leukemia, lymphoma, metastatic cancer. Leukoerythroblastic picture on smear."},
			},
		},
		"high": {
			Title: "Elevated Hemoglobin",
			Differentials: []interp.Differential{
				{Condition: "Polycythemia Vera", Discussion: "Hb >16.5 g/dL (men) or >16.0 g/dL (women) is major criterion."},
				{Condition: "Chronic Hypoxia", Discussion: "Compensatory from COPD, heart disease, sleep apnea, high altitude."},
				{Condition: "Dehydration", Discussion: "Hemoconcentration from volume depletion. Corrects with hydration."},
				{Condition: "Spurious (Lipemia/High WBC)", Discussion: "Very high WBC, lipemia, or monoclonal proteins cause turbidity artifact."},
			},
		},
	},
	"MCV": {
		"low": {
			Title: "Microcytosis (Low MCV)",
			Differentials: []interp.Differential{
				{Condition: "Iron Deficiency Anemia", Discussion: "Most common cause. Low MCV with elevated RDW."},
				{Condition: "Thalassemia Trait", Discussion: "Low MCV with normal/slightly elevated RDW. RBC count often normal/elevated. Mentzer index <13."},
				{Condition: "Anemia of Chronic Disease", Discussion: "Usually normocytic but can be microcytic in ~30%. Ferritin normal/elevated."},
				{Condition: "Sideroblastic Anemia", Discussion: "Congenital or acquired. Ring sideroblasts on bone marrow iron stain."},
				{Condition: "Lead Poisoning", Discussion: "Inhibits heme synthesis. Basophilic stippling. Check blood lead level."},
			},
		},
		"high": {
			Title: "Macrocytosis (High MCV)",
			Differentials: []interp.Differential{
				{Condition: "Vitamin B12 Deficiency", Discussion: "Megaloblastic anemia, MCV often >110 fL. Hypersegmented neutrophils."},
				{Condition: "Folate Deficiency", Discussion: "Similar to B12 without neurological features. Alcoholism, poor diet, medications."},
				{Condition: "Myelodysplastic Syndrome", Discussion: "Clonal disorder with dysplastic morphology. Common cause in elderly."},
				{Condition: "Alcoholism/Liver Disease", Discussion: "Direct toxic effect or folate deficiency or altered lipid metabolism."},
				{Condition: "Hypothyroidism", Discussion: "Mild macrocytosis. Check TSH and free T4."},
				{Condition: "Reticulocytosis", Discussion: "Reticulocytes are larger than mature RBCs. Check reticulocyte count."},
				{Condition: "Medications", Discussion: "Hydroxyurea, methotrexate, azathioprine, zidovudine."},
			},
		},
	},
	"MCHC": {
		"low": {
			Title: "Low MCHC (Hypochromia)",
			Differentials: []interp.Differential{
				{Condition: "Iron Deficiency Anemia", Discussion: "Most common cause. Decreased hemoglobin synthesis."},
				{Condition: "Thalassemia", Discussion: "Decreased globin chain synthesis."},
				{Condition: "Sideroblastic Anemia", Discussion: "Impaired heme synthesis."},
			},
		},
		"high": {
			Title: "High MCHC",
			Differentials: []interp.Differential{
				{Condition: "Hereditary Spherocytosis", Discussion: "RBC membrane defect. MCHC truly elevated >36 g/dL. EMA binding test diagnostic."},
				{Condition: "Cold Agglutinin Disease", Discussion: "Spurious from RBC agglutination. Warming sample to 37C resolves."},
				{Condition: "Severe Lipemia", Discussion: "Turbidity falsely elevates hemoglobin measurement."},
				{Condition: "Hemoglobin C Disease", Discussion: "RBC dehydration from Hb C crystals. Target cells on smear."},
			},
		},
	},
	"RDW": {
		"high": {
			Title: "Elevated RDW (Anisocytosis)",
			Differentials: []interp.Differential{
				{Condition: "Iron Deficiency Anemia", Discussion: "Early finding. Mixed normocytic and microcytic cells."},
				{Condition: "B12/Folate Deficiency", Discussion: "Mixed population of macrocytes and normocytes."},
				{Condition: "Myelodysplastic Syndrome", Discussion: "Dysplastic erythropoiesis with variable cell sizes."},
				{Condition: "Post-Transfusion", Discussion: "Transfused RBCs differ in size from patient cells."},
				{Condition: "Mixed Nutritional Deficiency", Discussion: "Combined iron and B12/folate deficiency."},
				{Condition: "Hemoglobinopathies", Discussion: "Variable RBC shapes and sizes."},
			},
		},
	},
	"WBC": {
		"low": {
			Title: "Leukopenia (Low WBC)",
			Differentials: []interp.Differential{
				{Condition: "Neutropenia", Discussion: "Most common cause. Viral infections, drugs, autoimmune, marrow failure."},
				{Condition: "Viral Infections", Discussion: "HIV, hepatitis, EBV, CMV, influenza cause transient leukopenia."},
				{Condition: "Aplastic Anemia", Discussion: "Pancytopenia with hypocellular bone marrow."},
				{Condition: "Drug-Induced", Discussion: "Chemotherapy, clozapine, carbamazepine, methimazole, sulfonamides."},
				{Condition: "Autoimmune", Discussion: "SLE, rheumatoid arthritis can cause neutropenia or lymphopenia."},
				{Condition: "Hypersplenism", Discussion: "Splenomegaly sequesters WBCs."},
			},
		},
		"high": {
			Title: "Leukocytosis (High WBC)",
			Differentials: []interp.Differential{
				{Condition: "Bacterial Infection", Discussion: "Most common cause. Left shift, toxic granulation, Dohle bodies."},
				{Condition: "Stress/Physiologic", Discussion: "Catecholamine demargination of neutrophils."},
				{Condition: "Corticosteroid Use", Discussion: "Demargination and decreased migration to tissues."},
				{Condition: "Chronic Myeloid Leukemia (CML)", Discussion: "Full myeloid maturation spectrum. Basophilia. BCR-ABL1."},
				{Condition: "Acute Leukemia", Discussion: "Can present with very high WBC with circulating blasts."},
				{Condition: "Smoking", Discussion: "Chronic mild neutrophilic leukocytosis."},
			},
		},
	},
	"Platelets": {
		"low": {
			Title: "Thrombocytopenia (Low Platelets)",
			Differentials: []interp.Differential{
				{Condition: "Immune Thrombocytopenia (ITP)", Discussion: "Autoimmune destruction. Diagnosis of exclusion. Large platelets on smear."},
				{Condition: "Pseudothrombocytopenia", Discussion: "EDTA-induced clumping. Check smear. Repeat with citrate tube."},
				{Condition: "DIC", Discussion: "Consumptive coagulopathy. Elevated PT/PTT, low fibrinogen, schistocytes."},
				{Condition: "TTP/HUS", Discussion: "Microangiopathic hemolytic anemia. Schistocytes. ADAMTS13 for TTP."},
				{Condition: "Bone Marrow Failure", Discussion: "Aplastic anemia, MDS, leukemia. Usually with other cytopenias."},
				{Condition: "Drug-Induced", Discussion: "HIT, valproic acid, quinine, chemotherapy."},
				{Condition: "Liver Disease/Hypersplenism", Discussion: "Portal hypertension with platelet sequestration."},
			},
		},
		"high": {
			Title: "Thrombocytosis (High Platelets)",
			Differentials: []interp.Differential{
				{Condition: "Reactive Thrombocytosis", Discussion: "Most common (>80%). Infection, inflammation, iron deficiency, surgery."},
				{Condition: "Essential Thrombocythemia", Discussion: "Myeloproliferative neoplasm. JAK2, CALR, or MPL mutations."},
				{Condition: "Iron Deficiency", Discussion: "Reactive thrombocytosis. Normalizes with iron replacement."},
				{Condition: "Post-Splenectomy", Discussion: "Loss of splenic sequestration."},
			},
		},
	},
	"MPV": {
		"low": {
			Title: "Low MPV (Small Platelets)",
			Differentials: []interp.Differential{
				{Condition: "Bone Marrow Suppression", Discussion: "Decreased megakaryopoiesis produces small platelets."},
				{Condition: "Wiskott-Aldrich Syndrome", Discussion: "X-linked. Characteristically small platelets with thrombocytopenia."},
				{Condition: "Hypersplenism", Discussion: "Spleen sequesters larger platelets."},
			},
		},
		"high": {
			Title: "High MPV (Large Platelets)",
			Differentials: []interp.Differential{
				{Condition: "Immune Thrombocytopenia (ITP)", Discussion: "Compensatory large, young platelets."},
				{Condition: "Inherited Platelet Disorders", Discussion: "Bernard-Soulier, Gray platelet syndrome, MYH9-related disease."},
				{Condition: "EDTA Artifact", Discussion: "Prolonged EDTA exposure causes platelet swelling."},
			},
		},
	},
	"Neutrophils": {
		"low": {
			Title: "Neutropenia",
			Differentials: []interp.Differential{
				{Condition: "Drug-Induced", Discussion: "Chemotherapy, clozapine, carbamazepine, methimazole."},
				{Condition: "Viral Infections", Discussion: "HIV, hepatitis, EBV, CMV, parvovirus B19."},
				{Condition: "Autoimmune Neutropenia", Discussion: "Primary or secondary (SLE, Felty syndrome)."},
				{Condition: "Benign Ethnic Neutropenia", Discussion: "Common in African descent. ANC 1.0-1.5 without increased risk."},
			},
		},
		"high": {
			Title: "Neutrophilia",
			Differentials: []interp.Differential{
				{Condition: "Bacterial Infection", Discussion: "Most common. Left shift, toxic granulation."},
				{Condition: "Corticosteroid Effect", Discussion: "Demargination from vessel walls."},
				{Condition: "Myeloproliferative Neoplasms", Discussion: "CML with persistent neutrophilia and basophilia."},
			},
		},
	},
	"Lymphocytes": {
		"low": {
			Title: "Lymphopenia",
			Differentials: []interp.Differential{
				{Condition: "HIV/AIDS", Discussion: "CD4+ T cell depletion."},
				{Condition: "Corticosteroid Use", Discussion: "Lymphocyte redistribution and apoptosis."},
				{Condition: "Severe Infection/Sepsis", Discussion: "Lymphocyte apoptosis. Poor prognostic sign."},
			},
		},
		"high": {
			Title: "Lymphocytosis",
			Differentials: []interp.Differential{
				{Condition: "Viral Infections", Discussion: "EBV, CMV, hepatitis. Reactive lymphocytes on smear."},
				{Condition: "Chronic Lymphocytic Leukemia (CLL)", Discussion: "Mature lymphocytes >5 x10^9/L. Smudge cells."},
				{Condition: "Pertussis", Discussion: "Marked lymphocytosis especially in children."},
			},
		},
	},
	"Eosinophils": {
		"high": {
			Title: "Eosinophilia",
			Differentials: []interp.Differential{
				{Condition: "Allergic Conditions", Discussion: "Asthma, allergic rhinitis, eczema. Most common cause."},
				{Condition: "Parasitic Infections", Discussion: "Tissue-invasive helminths."},
				{Condition: "Hypereosinophilic Syndrome", Discussion: "Persistent >1.5 x10^9/L with organ damage."},
			},
		},
	},
	"Basophils": {
		"high": {
			Title: "Basophilia",
			Differentials: []interp.Differential{
				{Condition: "Chronic Myeloid Leukemia", Discussion: "Characteristic finding in CML."},
				{Condition: "Other Myeloproliferative Neoplasms", Discussion: "PV, myelofibrosis."},
				{Condition: "Allergic/Hypersensitivity", Discussion: "Immediate hypersensitivity reactions."},
			},
		},
	},
	"Monocytes": {
		"high": {
			Title: "Monocytosis",
			Differentials: []interp.Differential{
				{Condition: "Chronic Infections", Discussion: "TB, endocarditis, brucellosis, fungal infections."},
				{Condition: "CMML", Discussion: "Persistent monocytosis >1 x10^9/L for >3 months."},
				{Condition: "Recovery from Neutropenia", Discussion: "Monocytes recover before neutrophils."},
			},
		},
	},
	"Reticulocytes": {
		"low": {
			Title: "Reticulocytopenia",
			Differentials: []interp.Differential{
				{Condition: "Bone Marrow Failure", Discussion: "Aplastic anemia, pure red cell aplasia, marrow infiltration."},
				{Condition: "Nutritional Deficiency", Discussion: "Untreated iron, B12, or folate deficiency limits production."},
				{Condition: "Chronic Kidney Disease", Discussion: "Inadequate erythropoietin drive."},
			},
		},
		"high": {
			Title: "Reticulocytosis",
			Differentials: []interp.Differential{
				{Condition: "Hemolysis", Discussion: "Appropriate marrow response to RBC destruction. Check LDH, haptoglobin."},
				{Condition: "Acute Blood Loss", Discussion: "Marrow compensation peaks 7-10 days after bleeding."},
				{Condition: "Recovery from Deficiency", Discussion: "Brisk response after iron, B12, or folate replacement."},
			},
		},
	},
}
