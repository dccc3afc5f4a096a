// server/internal/models/common.go
package models

import "fmt"

// WasteCategory classifies a pickup job's load.
type WasteCategory string

const (
	WasteRecyclable WasteCategory = "recyclable"
	WasteOrganic    WasteCategory = "organic"
	WasteMixed      WasteCategory = "mixed"
	WasteHazardous  WasteCategory = "hazardous"
)

func ParseWasteCategory(s string) (WasteCategory, error) {
	switch WasteCategory(s) {
	case WasteRecyclable, WasteOrganic, WasteMixed, WasteHazardous:
		return WasteCategory(s), nil
	}
	return "", fmt.Errorf("invalid waste category: %q", s)
}

// MaterialCategory is the closed set of material types shared by the
// recycling center directory and the scanner.
type MaterialCategory string

const (
	MaterialPlastic       MaterialCategory = "plastic"
	MaterialPaper         MaterialCategory = "paper"
	MaterialGlass         MaterialCategory = "glass"
	MaterialMetal         MaterialCategory = "metal"
	MaterialElectronics   MaterialCategory = "electronics"
	MaterialOrganic       MaterialCategory = "organic"
	MaterialHazardous     MaterialCategory = "hazardous"
	MaterialTextile       MaterialCategory = "textile"
	MaterialNonRecyclable MaterialCategory = "non_recyclable"

	// MaterialAll is the directory filter wildcard, not a real material.
	MaterialAll MaterialCategory = "all"
)

func ParseMaterialCategory(s string) (MaterialCategory, error) {
	switch MaterialCategory(s) {
	case MaterialPlastic, MaterialPaper, MaterialGlass, MaterialMetal,
		MaterialElectronics, MaterialOrganic, MaterialHazardous,
		MaterialTextile, MaterialNonRecyclable, MaterialAll:
		return MaterialCategory(s), nil
	}
	return "", fmt.Errorf("invalid material category: %q", s)
}
