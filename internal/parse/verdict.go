// Package parse turns the external model's free-form answer into a strictly
// typed verdict. It is total: any input string yields exactly one risk level
// and defined summary/details, never an error.
package parse

import (
	"strings"

	"github.com/vietcheck/vietcheck/internal/model"
	"github.com/vietcheck/vietcheck/internal/strategy"
)

// PlaceholderSourceTitle replaces a missing citation title
const PlaceholderSourceTitle = "Nguồn tin Google/Facebook"

// rule is one step of the prioritized guard chain. Evaluated top to bottom
// over the lower-cased answer; the first rule that fires wins.
type rule struct {
	name  string
	apply func(lower string) (model.RiskLevel, bool)
}

// VerdictParser classifies answers using configured keyword tiers
type VerdictParser struct {
	cfg   model.ParserConfig
	rules []rule
}

// NewVerdictParser builds the rule chain from the keyword tiers
func NewVerdictParser(cfg model.ParserConfig) *VerdictParser {
	p := &VerdictParser{cfg: cfg}
	p.rules = []rule{
		{
			name: "high_risk",
			apply: func(lower string) (model.RiskLevel, bool) {
				if containsAny(lower, cfg.HighRiskTerms) {
					return model.RiskHighRisk, true
				}
				return "", false
			},
		},
		{
			name: "warning",
			apply: func(lower string) (model.RiskLevel, bool) {
				if containsAny(lower, cfg.WarningTerms) {
					return model.RiskWarning, true
				}
				return "", false
			},
		},
		{
			// An absence-of-negative signal resolves to SAFE only when the
			// text also carries explicit positive-trust language
			name: "absence",
			apply: func(lower string) (model.RiskLevel, bool) {
				if !containsAny(lower, cfg.AbsenceTerms) {
					return "", false
				}
				if containsAny(lower, cfg.PositiveTerms) {
					return model.RiskSafe, true
				}
				return model.RiskUnknown, true
			},
		},
	}
	return p
}

// Parse builds a complete verdict from the raw answer text and its
// grounding citations
func (p *VerdictParser) Parse(text string, citations []model.Citation) *model.Verdict {
	summary, details := p.Split(text)
	return &model.Verdict{
		RiskLevel: p.Classify(text),
		Summary:   summary,
		Details:   details,
		Sources:   p.Sources(citations),
	}
}

// Classify maps the answer text to a risk tier. Tier order encodes an
// assume-worse-unless-proven-otherwise bias: a single strong negative
// keyword anywhere overrides weaker positive language elsewhere.
func (p *VerdictParser) Classify(text string) model.RiskLevel {
	lower := strings.ToLower(text)
	for _, r := range p.rules {
		if level, ok := r.apply(lower); ok {
			return level
		}
	}
	return model.RiskUnknown
}

// Split separates the answer into summary and details on the details-section
// marker from the answer skeleton. When the marker is absent the whole raw
// answer becomes the details and the summary degrades to the label-stripped
// full text.
func (p *VerdictParser) Split(text string) (summary, details string) {
	head, tail, found := strings.Cut(text, strategy.DetailsMarker)

	summary = dropRiskLine(head)
	summary = strings.Replace(summary, strategy.SummaryMarker, "", 1)
	summary = strings.TrimSpace(summary)
	summary = strings.TrimSpace(trimEdgeQuotes(summary))

	if found {
		details = strings.TrimSpace(tail)
	} else {
		details = text
	}
	return summary, details
}

// Sources keeps citations with a resolvable URI, fills missing titles with
// the placeholder and collapses duplicate URIs, preserving order
func (p *VerdictParser) Sources(citations []model.Citation) []model.Source {
	seen := make(map[string]bool, len(citations))
	var sources []model.Source
	for _, c := range citations {
		uri := strings.TrimSpace(c.URI)
		if uri == "" || uri == "#" || seen[uri] {
			continue
		}
		seen[uri] = true

		title := strings.TrimSpace(c.Title)
		if title == "" {
			title = PlaceholderSourceTitle
		}
		sources = append(sources, model.Source{Title: title, URI: uri})
	}
	return sources
}

// RuleOverlap reports keywords present in more than one classification tier.
// Overlaps are flagged, not fixed: tier precedence decides the winner, but
// an overlap usually means the tier sets need retuning.
func (p *VerdictParser) RuleOverlap() []string {
	tiers := [][]string{p.cfg.HighRiskTerms, p.cfg.WarningTerms, p.cfg.AbsenceTerms}
	count := make(map[string]int)
	for _, tier := range tiers {
		inTier := make(map[string]bool)
		for _, term := range tier {
			term = strings.ToLower(term)
			if !inTier[term] {
				inTier[term] = true
				count[term]++
			}
		}
	}
	var overlaps []string
	for term, n := range count {
		if n > 1 {
			overlaps = append(overlaps, term)
		}
	}
	return overlaps
}

// dropRiskLine removes the risk-level line, label and stated value both; the
// classifier re-derives the level from the full text instead of trusting it
func dropRiskLine(s string) string {
	idx := strings.Index(s, strategy.RiskLevelMarker)
	if idx < 0 {
		return s
	}
	rest := s[idx:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return s[:idx] + rest[nl+1:]
	}
	return s[:idx]
}

func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// trimEdgeQuotes removes a single leading and trailing quote character
func trimEdgeQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimPrefix(s, `'`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSuffix(s, `'`)
	return s
}
