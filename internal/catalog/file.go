package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/unitconv/internal/models"
	"gopkg.in/yaml.v3"
)

type fileUnit struct {
	Name  string  `yaml:"name"`
	Ratio float64 `yaml:"ratio"`
}

type fileCategory struct {
	Name  string     `yaml:"name"`
	Units []fileUnit `yaml:"units"`
}

type fileDoc struct {
	Categories []fileCategory `yaml:"categories"`
}

// LoadFile reads extra categories from a YAML file.
func LoadFile(path string) ([]models.UnitSystem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open categories file: %w", err)
	}
	defer f.Close()
	systems, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return systems, nil
}

// Decode parses category definitions. Unknown keys and malformed tables are
// rejected.
func Decode(r io.Reader) ([]models.UnitSystem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	systems := make([]models.UnitSystem, 0, len(doc.Categories))
	for _, fc := range doc.Categories {
		names := make([]string, len(fc.Units))
		ratios := make([]float64, len(fc.Units))
		for i, u := range fc.Units {
			names[i] = u.Name
			ratios[i] = u.Ratio
		}
		s, err := models.NewUnitSystem(models.ParseCategory(fc.Name), names, ratios)
		if err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}
	return systems, nil
}
