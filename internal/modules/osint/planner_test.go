// internal/modules/osint/planner_test.go
package osint

import (
	"testing"

	"mirage/internal/core/domain"
	"mirage/internal/platform/randx"
	"mirage/internal/testutil"
)

func plannerTarget() domain.Target {
	return *domain.NewTarget("example.com", "Example Corp")
}

func TestQueryPlanner_TierSupersets(t *testing.T) {
	p := NewQueryPlanner(randx.New(1))
	target := plannerTarget()

	basic := p.Queries(target, domain.TierBasic)
	deep := p.Queries(target, domain.TierDeep)
	stealth := p.Queries(target, domain.TierStealth)

	testutil.AssertTrue(t, len(basic) < len(deep), "deep wider than basic")
	testutil.AssertTrue(t, len(deep) < len(stealth), "stealth wider than deep")

	asSet := func(qs []string) map[string]bool {
		m := make(map[string]bool, len(qs))
		for _, q := range qs {
			m[q] = true
		}
		return m
	}

	deepSet := asSet(deep)
	for _, q := range basic {
		testutil.AssertTrue(t, deepSet[q], "every basic query is in deep")
	}

	stealthSet := asSet(stealth)
	for _, q := range deep {
		testutil.AssertTrue(t, stealthSet[q], "every deep query is in stealth")
	}
}

func TestQueryPlanner_Expansion(t *testing.T) {
	p := NewQueryPlanner(randx.New(1))
	queries := p.Queries(plannerTarget(), domain.TierBasic)

	testutil.AssertContains(t, queries, "site:example.com", "domain expanded")
	testutil.AssertContains(t, queries, `"Example Corp"`, "company expanded")

	for _, q := range queries {
		testutil.AssertFalse(t, len(q) == 0, "no empty queries")
	}
}

func TestQueryPlanner_Deduplicated(t *testing.T) {
	p := NewQueryPlanner(randx.New(1))
	queries := p.Queries(plannerTarget(), domain.TierStealth)

	seen := make(map[string]bool, len(queries))
	for _, q := range queries {
		testutil.AssertFalse(t, seen[q], "no duplicate queries")
		seen[q] = true
	}
}

func TestQueryPlanner_QueriesDeterministic(t *testing.T) {
	// Queries must not consume the random source: two planners sharing a
	// seed still agree after one of them sized several plans.
	p1 := NewQueryPlanner(randx.New(42))
	p2 := NewQueryPlanner(randx.New(42))
	target := plannerTarget()

	for i := 0; i < 3; i++ {
		p1.Queries(target, domain.TierStealth)
	}

	a := p1.Plan(target, domain.TierDeep)
	b := p2.Plan(target, domain.TierDeep)

	testutil.AssertEqual(t, len(a), len(b), "same plan size")
	for i := range a {
		testutil.AssertEqual(t, a[i], b[i], "same seed same shuffle")
	}
}

func TestQueryPlanner_PlanSize(t *testing.T) {
	p := NewQueryPlanner(randx.New(1))
	target := plannerTarget()

	testutil.AssertEqual(t, p.PlanSize(target, domain.TierBasic), len(p.Queries(target, domain.TierBasic)), "size matches queries")
	testutil.AssertEqual(t, p.PlanSize(target, domain.TierBasic), 7, "basic template count")
}

func TestQueryPlanner_PlanIsPermutation(t *testing.T) {
	p := NewQueryPlanner(randx.New(5))
	target := plannerTarget()

	sorted := p.Queries(target, domain.TierDeep)
	planned := p.Plan(target, domain.TierDeep)

	testutil.AssertEqual(t, len(planned), len(sorted), "same size")

	set := make(map[string]bool, len(sorted))
	for _, q := range sorted {
		set[q] = true
	}
	for _, q := range planned {
		testutil.AssertTrue(t, set[q], "plan contains only known queries")
	}
}
