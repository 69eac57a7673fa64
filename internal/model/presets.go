package model

// LoanTypePreset seeds the editor with a typical facility of a given kind.
// Presets are static lookup data; the engine never reads them.
type LoanTypePreset struct {
	ID               string  `json:"id" yaml:"id"`
	Label            string  `json:"label" yaml:"label"`
	DefaultPrincipal float64 `json:"default_principal" yaml:"default_principal"`
	DefaultRate      float64 `json:"default_rate" yaml:"default_rate"`
	DefaultTenure    int     `json:"default_tenure_months" yaml:"default_tenure_months"`
}

// DefaultPresets covers the common MSME facility mix.
var DefaultPresets = []LoanTypePreset{
	{ID: "term", Label: "Term Loan", DefaultPrincipal: 1500000, DefaultRate: 11.5, DefaultTenure: 60},
	{ID: "ccod", Label: "CC/OD Limit", DefaultPrincipal: 800000, DefaultRate: 13.5, DefaultTenure: 12},
	{ID: "mudra", Label: "Mudra Loan", DefaultPrincipal: 500000, DefaultRate: 10.0, DefaultTenure: 36},
	{ID: "machinery", Label: "Machinery Loan", DefaultPrincipal: 2000000, DefaultRate: 10.5, DefaultTenure: 84},
	{ID: "vehicle", Label: "Commercial Vehicle", DefaultPrincipal: 900000, DefaultRate: 9.5, DefaultTenure: 48},
}

// PresetByID looks up a preset; ok is false for unknown ids.
func PresetByID(id string) (LoanTypePreset, bool) {
	for _, p := range DefaultPresets {
		if p.ID == id {
			return p, true
		}
	}
	return LoanTypePreset{}, false
}

// NewLoanFromPreset instantiates a loan with the preset's defaults.
func NewLoanFromPreset(p LoanTypePreset) Loan {
	return Loan{
		Type:              p.ID,
		Principal:         p.DefaultPrincipal,
		AnnualRatePercent: p.DefaultRate,
		TenureMonths:      p.DefaultTenure,
	}
}
