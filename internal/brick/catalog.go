package brick

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// CatalogPath is the brick catalog file, relative to the working directory.
const CatalogPath = "assets/bricks/brick.yaml"

// Catalog is the YAML description of the brick set (see assets/bricks/brick.yaml).
// Any field left out keeps its built-in default.
type Catalog struct {
	Dimensions Dimensions `yaml:"dimensions"`
	Palette    []string   `yaml:"palette,omitempty"`
	// Cell is the placement lattice spacing on X and Z.
	Cell float32 `yaml:"cell,omitempty"`
}

// DefaultCatalog returns the built-in 2×4 brick, eight colours and a 10-unit lattice.
func DefaultCatalog() Catalog {
	return Catalog{
		Dimensions: DefaultDimensions(),
		Palette:    append([]string(nil), DefaultPaletteHex...),
		Cell:       10,
	}
}

// LoadCatalog reads the catalog at path and overlays it on DefaultCatalog. A missing file is not
// an error. On a parse error the defaults are returned together with the error so the caller
// can log it and carry on.
func LoadCatalog(path string) (Catalog, error) {
	out := DefaultCatalog()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("brick catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog data and overlays the non-empty fields on DefaultCatalog.
func ParseCatalog(data []byte) (Catalog, error) {
	out := DefaultCatalog()
	var in Catalog
	if err := yaml.Unmarshal(data, &in); err != nil {
		return out, fmt.Errorf("brick catalog: %w", err)
	}
	if err := copier.CopyWithOption(&out.Dimensions, &in.Dimensions, copier.Option{IgnoreEmpty: true}); err != nil {
		return DefaultCatalog(), fmt.Errorf("brick catalog: %w", err)
	}
	if len(in.Palette) > 0 {
		out.Palette = in.Palette
	}
	if in.Cell > 0 {
		out.Cell = in.Cell
	}
	return out, nil
}
