package pondiuni

import (
	"context"
	"log/slog"

	"facultyhub-backend/lib/htmlutil"
	"facultyhub-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
)

// Signature describes what a section's table should look like. The source
// markup has no stable contract, so classification is a ranked strategy
// chain that degrades gracefully instead of failing all-or-nothing:
// panel match, header match, positional fallback, best partial match.
type Signature struct {
	// Section name used in log lines.
	Name string
	// PanelKeywords match the heading of a titled panel/container.
	PanelKeywords []string
	// RequiredHeaders must each appear (substring, normalized) among the
	// table's header cells.
	RequiredHeaders []string
	// ExcludedHeaders disqualify a table when any header contains one;
	// used to tell near-identical sections apart (e.g. "impact factor"
	// separates journal papers from conference papers).
	ExcludedHeaders []string
	// MinHeaders is the minimum header cell count.
	MinHeaders int
	// Position selects the nth qualifying table when only the positional
	// fallback applies; negative disables it.
	Position int
	// PanelOnly restricts classification to the panel strategy. Section
	// variants whose headers are too generic to identify on their own
	// (title + dates) must be claimed by a titled panel or not at all.
	PanelOnly bool
}

type Strategy string

const (
	StrategyPanel    Strategy = "panel"
	StrategyHeader   Strategy = "header"
	StrategyPosition Strategy = "position"
	StrategyPartial  Strategy = "partial"
)

type TableMatch struct {
	Table      *goquery.Selection
	Headers    []string
	Strategy   Strategy
	Confidence float64
}

var headingSelector = "h1, h2, h3, h4, h5, h6, caption, legend, .panel-heading, .panel-title, .card-header"

// panelScopes finds containers titled with one of the keywords. A caption
// scopes to its own table; any other heading climbs to the nearest
// ancestor that actually contains a table.
func panelScopes(doc *goquery.Document, keywords []string) []*goquery.Selection {
	scopes := []*goquery.Selection{}
	doc.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		if !textutil.MatchAny(htmlutil.CellText(heading), keywords) {
			return
		}
		if goquery.NodeName(heading) == "caption" {
			scopes = append(scopes, heading.Parent())
			return
		}
		scope := heading.Parent()
		for scope.Length() > 0 {
			if scope.Find("table").Length() > 0 {
				scopes = append(scopes, scope)
				return
			}
			scope = scope.Parent()
		}
	})
	return scopes
}

func headersSatisfy(headers []string, sig Signature) bool {
	if len(headers) < sig.MinHeaders {
		return false
	}
	for _, excluded := range sig.ExcludedHeaders {
		for _, h := range headers {
			if textutil.MatchAny(h, []string{excluded}) {
				return false
			}
		}
	}
	for _, required := range sig.RequiredHeaders {
		found := false
		for _, h := range headers {
			if textutil.MatchAny(h, []string{required}) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// partialScore measures keyword overlap between the signature's required
// headers and the table's actual headers. Unmatched keywords contribute
// their best JaroWinkler similarity so typo'd header text still ranks.
func partialScore(headers []string, sig Signature) float64 {
	if len(sig.RequiredHeaders) == 0 {
		return 0
	}
	for _, excluded := range sig.ExcludedHeaders {
		for _, h := range headers {
			if textutil.MatchAny(h, []string{excluded}) {
				return 0
			}
		}
	}

	total := 0.0
	for _, required := range sig.RequiredHeaders {
		best := 0.0
		for _, h := range headers {
			if textutil.MatchAny(h, []string{required}) {
				best = 1.0
				break
			}
			sim := matchr.JaroWinkler(
				textutil.Normalize(required),
				textutil.Normalize(h),
				false,
			)
			if sim > best {
				best = sim
			}
		}
		total += best
	}
	return total / float64(len(sig.RequiredHeaders))
}

const partialMatchThreshold = 0.45

// FindTables classifies every table of the document against the signature
// and returns the candidates ranked by confidence. Decisions are logged so
// operators can trace why a faculty page under- or over-extracted.
func FindTables(ctx context.Context, doc *goquery.Document, sig Signature) []TableMatch {
	// 1. titled panel scope
	matches := []TableMatch{}
	for _, scope := range panelScopes(doc, sig.PanelKeywords) {
		scope.Find("table").Each(func(i int, table *goquery.Selection) {
			headers := htmlutil.TableHeaders(table)
			if headersSatisfy(headers, sig) {
				slog.DebugContext(ctx, "table accepted",
					"section", sig.Name, "strategy", StrategyPanel, "headers", headers)
				matches = append(matches, TableMatch{
					Table:      table,
					Headers:    headers,
					Strategy:   StrategyPanel,
					Confidence: 1.0,
				})
			} else {
				slog.DebugContext(ctx, "table rejected in panel scope",
					"section", sig.Name, "headers", headers)
			}
		})
	}
	if len(matches) > 0 || sig.PanelOnly {
		return matches
	}

	// 2. header match over the whole document
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		headers := htmlutil.TableHeaders(table)
		if headersSatisfy(headers, sig) {
			slog.DebugContext(ctx, "table accepted",
				"section", sig.Name, "strategy", StrategyHeader, "index", i, "headers", headers)
			matches = append(matches, TableMatch{
				Table:      table,
				Headers:    headers,
				Strategy:   StrategyHeader,
				Confidence: 0.9,
			})
		}
	})
	if len(matches) > 0 {
		return matches
	}

	// 3. positional fallback: the nth table with enough header cells
	if sig.Position >= 0 {
		qualifying := 0
		doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
			headers := htmlutil.TableHeaders(table)
			if len(headers) < sig.MinHeaders {
				return true
			}
			if qualifying == sig.Position {
				slog.DebugContext(ctx, "table accepted",
					"section", sig.Name, "strategy", StrategyPosition, "index", i, "headers", headers)
				matches = append(matches, TableMatch{
					Table:      table,
					Headers:    headers,
					Strategy:   StrategyPosition,
					Confidence: 0.5,
				})
				return false
			}
			qualifying++
			return true
		})
	}
	if len(matches) > 0 {
		return matches
	}

	// 4. best partial match; header text varies between faculty pages and
	// sometimes contains typos, so strict matching alone would silently
	// under-extract
	bestScore := 0.0
	var best *TableMatch
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		headers := htmlutil.TableHeaders(table)
		if len(headers) < sig.MinHeaders {
			return
		}
		score := partialScore(headers, sig)
		if score > bestScore {
			bestScore = score
			best = &TableMatch{
				Table:      table,
				Headers:    headers,
				Strategy:   StrategyPartial,
				Confidence: score * 0.5,
			}
		}
	})
	if best != nil && bestScore >= partialMatchThreshold {
		slog.WarnContext(ctx, "accepting low-confidence partial table match",
			"section", sig.Name, "score", bestScore, "headers", best.Headers)
		matches = append(matches, *best)
	}
	return matches
}

// FindTable returns the highest-confidence candidate.
func FindTable(ctx context.Context, doc *goquery.Document, sig Signature) (TableMatch, bool) {
	matches := FindTables(ctx, doc, sig)
	if len(matches) == 0 {
		return TableMatch{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Confidence > best.Confidence {
			best = m
		}
	}
	return best, true
}
