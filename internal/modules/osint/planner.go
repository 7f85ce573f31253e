// internal/modules/osint/planner.go
package osint

import (
	"sort"
	"strings"

	"mirage/internal/core/domain"
	"mirage/internal/platform/randx"
)

// QueryPlanner builds the abstract search-query list for a target and
// tier. Tiers are supersets: every basic query is part of deep, every deep
// query is part of stealth. Queries are de-duplicated with set semantics;
// Plan shuffles them with the injected random source so a fixed seed gives
// a reproducible order.
type QueryPlanner struct {
	rng randx.Rand
}

// NewQueryPlanner creates a planner drawing from rng.
func NewQueryPlanner(rng randx.Rand) *QueryPlanner {
	if rng == nil {
		rng = randx.NewUnseeded()
	}
	return &QueryPlanner{rng: rng}
}

// Query templates per tier. %d expands to the domain, %c to the company.
var (
	basicTemplates = []string{
		`site:%d`,
		`"%c"`,
		`"%c" employees`,
		`"%c" email`,
		`%d contact`,
		`"%c" linkedin`,
		`site:%d login`,
	}

	deepTemplates = []string{
		`site:%d filetype:pdf`,
		`site:%d filetype:xlsx`,
		`"%c" resume`,
		`"%c" "curriculum vitae"`,
		`intitle:"index of" %d`,
		`"%c" breach`,
		`"%d" pastebin`,
		`"%c" github`,
		`"%c" "internal use only"`,
		`inurl:admin site:%d`,
	}

	stealthTemplates = []string{
		`cache:%d`,
		`"%d" site:archive.org`,
		`"%c" confidential`,
		`"%c" "non-disclosure"`,
		`site:%d ext:sql | ext:bak | ext:old`,
		`"%c" vpn OR citrix OR remote`,
		`"%c" badge OR "id card"`,
		`"%d" ssh OR ftp credentials`,
	}
)

// Queries returns the de-duplicated query set for the tier in sorted
// order. It is deterministic and does not consume the random source, so it
// can be used for pre-run sizing.
func (p *QueryPlanner) Queries(target domain.Target, tier domain.Tier) []string {
	templates := make([]string, 0, len(basicTemplates)+len(deepTemplates)+len(stealthTemplates))
	templates = append(templates, basicTemplates...)
	if tier.Includes(domain.TierDeep) {
		templates = append(templates, deepTemplates...)
	}
	if tier.Includes(domain.TierStealth) {
		templates = append(templates, stealthTemplates...)
	}

	set := make(map[string]struct{}, len(templates))
	for _, tpl := range templates {
		q := expandTemplate(tpl, target)
		if q == "" {
			continue
		}
		set[q] = struct{}{}
	}

	queries := make([]string, 0, len(set))
	for q := range set {
		queries = append(queries, q)
	}
	sort.Strings(queries)
	return queries
}

// Plan returns the query set in randomized order.
func (p *QueryPlanner) Plan(target domain.Target, tier domain.Tier) []string {
	queries := p.Queries(target, tier)
	p.rng.Shuffle(len(queries), func(i, j int) {
		queries[i], queries[j] = queries[j], queries[i]
	})
	return queries
}

// PlanSize returns the number of queries the tier produces.
func (p *QueryPlanner) PlanSize(target domain.Target, tier domain.Tier) int {
	return len(p.Queries(target, tier))
}

func expandTemplate(tpl string, target domain.Target) string {
	q := strings.ReplaceAll(tpl, "%d", target.Domain)
	q = strings.ReplaceAll(q, "%c", target.Company)
	return strings.TrimSpace(q)
}
