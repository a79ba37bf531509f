package risk

import "github.com/solmirano/aula/internal/model"

// DefaultDictionary returns the built-in hazard keyword sets used by the
// evaluation reports. Roots are stored accent-free; normalization makes
// accented variants in comments match the same roots.
func DefaultDictionary() Dictionary {
	return Dictionary{
		model.PsychosocialRisk: {
			"estres", "ansiedad", "presion", "agotamiento", "depresion",
			"angustia", "miedo", "tension", "agobio", "insomnio",
		},
		model.HarassmentAbuse: {
			"acoso", "acosa", "hostigamiento", "hostiga", "intimida",
			"intimidacion", "amenaza", "amenazo", "persigue", "abuso",
		},
		model.VerbalPhysicalAbuse: {
			"grito", "grita", "insulto", "insulta", "humillo",
			"humilla", "golpeo", "golpea", "burla", "ofende",
		},
		model.VulnerabilityDiscrimination: {
			"discrimina", "discriminacion", "racista", "machista", "clasista",
			"excluye", "desprecia", "menosprecia", "homofobico", "xenofobo",
		},
	}
}
