package models

import "github.com/babubl/loan-restructure-pro/internal/model"

// LoanInput is one loan in a request body.
type LoanInput struct {
	Type         string  `json:"type,omitempty"`
	Principal    float64 `json:"principal" binding:"required,gt=0"`
	Rate         float64 `json:"rate" binding:"gte=0"`
	TenureMonths int     `json:"tenure_months" binding:"required,gt=0"`
}

// SimulateRequest runs a single strategy over a portfolio.
type SimulateRequest struct {
	Portfolio []LoanInput `json:"portfolio" binding:"required,min=1,dive"`
	Strategy  string      `json:"strategy" binding:"required"`
}

// CompareRequest runs every strategy over a portfolio.
type CompareRequest struct {
	Portfolio []LoanInput `json:"portfolio" binding:"required,min=1,dive"`
}

// ReportRequest builds the full report for a labeled portfolio.
type ReportRequest struct {
	Label     string      `json:"label"`
	Portfolio []LoanInput `json:"portfolio" binding:"required,min=1,dive"`
}

// ToPortfolio converts request loans into the engine's domain type.
func ToPortfolio(loans []LoanInput) model.Portfolio {
	book := make(model.Portfolio, 0, len(loans))
	for _, l := range loans {
		book = append(book, model.Loan{
			Type:              l.Type,
			Principal:         l.Principal,
			AnnualRatePercent: l.Rate,
			TenureMonths:      l.TenureMonths,
		})
	}
	return book
}
