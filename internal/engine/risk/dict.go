package risk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solmirano/aula/internal/model"
)

// LoadDictionary reads a YAML dictionary file mapping category identifiers
// to keyword lists:
//
//	maltrato_verbal_fisico:
//	  - grito
//	  - humillo
//
// Unknown category identifiers are an error.
func LoadDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("risk: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("risk: parse %s: %w", path, err)
	}

	dict := make(Dictionary, len(raw))
	for name, keywords := range raw {
		cat, err := model.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("risk: %s: %w", path, err)
		}
		dict[cat] = keywords
	}
	return dict, nil
}
