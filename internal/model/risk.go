package model

import "fmt"

// Category is one of the fixed hazard themes detected in comments.
// String values keep the Spanish identifiers used in the evaluation reports.
type Category int

const (
	PsychosocialRisk Category = iota
	HarassmentAbuse
	VerbalPhysicalAbuse
	VulnerabilityDiscrimination
)

// Categories returns all risk categories in canonical order.
func Categories() []Category {
	return []Category{
		PsychosocialRisk,
		HarassmentAbuse,
		VerbalPhysicalAbuse,
		VulnerabilityDiscrimination,
	}
}

func (c Category) String() string {
	switch c {
	case PsychosocialRisk:
		return "riesgo_psicosocial"
	case HarassmentAbuse:
		return "acoso_maltrato"
	case VerbalPhysicalAbuse:
		return "maltrato_verbal_fisico"
	case VulnerabilityDiscrimination:
		return "vulnerabilidad_discriminacion"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves a category identifier as it appears in dictionary
// files. Unknown identifiers are an error, never silently dropped.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("model: unknown risk category %q", s)
}
