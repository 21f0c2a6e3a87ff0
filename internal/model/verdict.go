package model

import "time"

// RiskLevel is the enumerated risk tier of a verdict
type RiskLevel string

const (
	RiskSafe     RiskLevel = "SAFE"
	RiskWarning  RiskLevel = "WARNING"
	RiskHighRisk RiskLevel = "HIGH_RISK"
	RiskUnknown  RiskLevel = "UNKNOWN"
)

// Display returns the Vietnamese label matching the directive's answer skeleton
func (r RiskLevel) Display() string {
	switch r {
	case RiskSafe:
		return "AN TOÀN"
	case RiskWarning:
		return "CẢNH BÁO"
	case RiskHighRisk:
		return "RỦI RO CAO"
	default:
		return "KHÔNG RÕ"
	}
}

// Citation is a raw grounding reference attached to a model answer,
// before filtering and deduplication
type Citation struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri"`
}

// Source is a cited web source included in a verdict.
// Invariant: URI is non-empty; Title falls back to a placeholder.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Verdict is the structured reputation result handed back to the caller.
// Created once per request, never mutated afterwards.
type Verdict struct {
	RiskLevel RiskLevel `json:"risk_level"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details"`
	Sources   []Source  `json:"sources"`

	Subject   *Subject  `json:"subject,omitempty"` // nil for image checks
	CheckedAt time.Time `json:"checked_at"`
	Model     string    `json:"model,omitempty"`
}
