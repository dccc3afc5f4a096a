// server/internal/models/scan_result.go
package models

// RecommendedCenter is the directory suggestion attached to a scan result
// when the caller shared a location.
type RecommendedCenter struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Distance       float64           `json:"distance"`
	Phone          string            `json:"phone,omitempty"`
	OperatingHours map[string]string `json:"operating_hours,omitempty"`
}

// ScanResult is the outcome of one scanner invocation. It is ephemeral:
// produced by one scan, replaced or discarded by the next.
type ScanResult struct {
	IdentifiedType    string             `json:"identified_type"`
	ConfidenceScore   float64            `json:"confidence_score"` // within [0,1]
	MaterialCategory  MaterialCategory   `json:"material_category"`
	Recyclable        bool               `json:"recyclable"`
	DisposalMethod    string             `json:"disposal_method"`
	PreparationTips   string             `json:"preparation_tips,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
	RecommendedCenter *RecommendedCenter `json:"recommended_center,omitempty"`
}
