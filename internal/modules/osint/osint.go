// internal/modules/osint/osint.go

// Package osint synthesizes open-source-intelligence findings: employees,
// email addresses, exposed documents and breach hits. It is the one module
// driven by an explicit query plan: queries are batched through the batch
// pool the way a real implementation would batch search-engine calls.
package osint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mirage/internal/core/domain"
	"mirage/internal/core/ports"
	"mirage/internal/modules/common"
	"mirage/internal/platform/cache"
	"mirage/internal/platform/errors"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
	"mirage/internal/platform/workerpool"
)

// taskFailureRate simulates the fraction of search calls a flaky backend
// rejects. Failed tasks contribute an empty result, never an abort.
const taskFailureRate = 0.03

const (
	interBatchDelayMin = 2 * time.Millisecond
	interBatchDelayMax = 8 * time.Millisecond
)

// Collector implements the osint module.
type Collector struct {
	logger    logx.Logger
	rng       randx.Rand
	cache     cache.Cache
	planner   *QueryPlanner
	batchSize int
}

// New creates the collector. cache may be nil to disable query reuse.
func New(logger logx.Logger, rng randx.Rand, queryCache cache.Cache, batchSize int) *Collector {
	if batchSize <= 0 {
		batchSize = 25
	}
	return &Collector{
		logger:    logger.With("module", "osint"),
		rng:       rng,
		cache:     queryCache,
		planner:   NewQueryPlanner(rng),
		batchSize: batchSize,
	}
}

// Name returns the module name.
func (c *Collector) Name() domain.ModuleName {
	return domain.ModuleOSINT
}

// Description returns a one-line description.
func (c *Collector) Description() string {
	return "open-source intelligence collection (employees, emails, documents, breaches)"
}

// TaskCount returns the number of queries the plan will contain. It does
// not consume the random source.
func (c *Collector) TaskCount(target domain.Target, cfg domain.ScanConfig) int {
	return c.planner.PlanSize(target, cfg.Tier())
}

// Run executes the query plan through the batch pool. A canceled context
// returns the records of completed batches together with ErrCanceled.
func (c *Collector) Run(ctx context.Context, target domain.Target, cfg domain.ScanConfig, sink ports.TaskSink) ([]*domain.Record, error) {
	if sink == nil {
		sink = ports.NopSink{}
	}

	queries := c.planner.Plan(target, cfg.Tier())
	c.logger.Debug("query plan built", "queries", len(queries), "tier", cfg.Tier())

	tasks := make([]workerpool.Task, 0, len(queries))
	for _, q := range queries {
		tasks = append(tasks, &queryTask{
			collector: c,
			query:     q,
			target:    target,
			cfg:       cfg,
		})
	}

	pool := workerpool.New(workerpool.Options{
		BatchSize: c.batchSize,
		DelayMin:  interBatchDelayMin,
		DelayMax:  interBatchDelayMax,
		Rand:      c.rng,
		Logger:    c.logger,
	})

	results, err := pool.Run(ctx, tasks, func(res workerpool.TaskResult) {
		// A failed task advances progress with an empty record set.
		sink.Advance(res.Task.(*queryTask).records)
	})

	records := make([]*domain.Record, 0, len(results))
	for _, res := range results {
		records = append(records, res.Task.(*queryTask).records...)
	}

	if err != nil {
		return records, err
	}
	return records, nil
}

// Close releases resources (none held).
func (c *Collector) Close() error {
	return nil
}

// queryTask executes one search query against the synthesizer, consulting
// the run-owned cache first so duplicate queries reuse results.
type queryTask struct {
	collector *Collector
	query     string
	target    domain.Target
	cfg       domain.ScanConfig

	records []*domain.Record
}

func (t *queryTask) Name() string {
	return t.query
}

func (t *queryTask) Execute(ctx context.Context) error {
	c := t.collector

	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey(t.query)); ok {
			t.records = cached.([]*domain.Record)
			return nil
		}
	}

	// Simulated search latency.
	if !common.Sleep(ctx, common.Jitter(c.rng, common.DefaultDelayMin, common.DefaultDelayMax)) {
		return errors.Wrap(errors.ErrCanceled, "query")
	}

	if c.rng.Float64() < taskFailureRate {
		return errors.Wrapf(errors.ErrTaskFailed, "search backend rejected %q", t.query)
	}

	t.records = c.synthesize(t.query, t.target, t.cfg)

	if c.cache != nil {
		c.cache.Set(cacheKey(t.query), t.records)
	}
	return nil
}

func cacheKey(query string) string {
	return "osint:" + query
}

// synthesize fabricates the result set of one query. The query text only
// steers which record kinds appear; volume follows the config modifiers.
func (c *Collector) synthesize(query string, target domain.Target, cfg domain.ScanConfig) []*domain.Record {
	count := c.rng.Between(0, 1+cfg.VolumeFactor())
	records := make([]*domain.Record, 0, count)

	for i := 0; i < count; i++ {
		switch c.pickKind(query) {
		case domain.RecordTypeEmployee:
			records = append(records, c.employee(target))
		case domain.RecordTypeEmail:
			records = append(records, c.email(target))
		case domain.RecordTypeDocument:
			records = append(records, c.document(target))
		case domain.RecordTypeBreach:
			records = append(records, c.breach(target))
		}
	}
	return records
}

// pickKind biases the record kind by query keywords.
func (c *Collector) pickKind(query string) domain.RecordType {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "employees"), strings.Contains(q, "linkedin"), strings.Contains(q, "resume"):
		return domain.RecordTypeEmployee
	case strings.Contains(q, "email"), strings.Contains(q, "contact"):
		return domain.RecordTypeEmail
	case strings.Contains(q, "filetype"), strings.Contains(q, "index of"), strings.Contains(q, "ext:"):
		return domain.RecordTypeDocument
	case strings.Contains(q, "breach"), strings.Contains(q, "pastebin"), strings.Contains(q, "credentials"):
		return domain.RecordTypeBreach
	default:
		kinds := []domain.RecordType{
			domain.RecordTypeEmployee,
			domain.RecordTypeEmail,
			domain.RecordTypeDocument,
			domain.RecordTypeBreach,
		}
		return kinds[c.rng.Intn(len(kinds))]
	}
}

func (c *Collector) person() (first, last string) {
	return c.rng.Pick(firstNames), c.rng.Pick(lastNames)
}

func (c *Collector) employee(target domain.Target) *domain.Record {
	first, last := c.person()
	name := first + " " + last
	email := personalEmail(first, last, target.Domain)

	return domain.NewRecord(domain.RecordTypeEmployee, name, "osint").
		WithField("name", name).
		WithField("email", email).
		WithField("role", c.rng.Pick(jobRoles)).
		WithField("handle", strings.ToLower(first+last))
}

func (c *Collector) email(target domain.Target) *domain.Record {
	first, last := c.person()
	email := personalEmail(first, last, target.Domain)

	return domain.NewRecord(domain.RecordTypeEmail, email, "osint").
		WithField("name", first+" "+last).
		WithField("email", email)
}

func (c *Collector) document(target domain.Target) *domain.Record {
	title := c.rng.Pick(documentTitles)
	url := fmt.Sprintf("https://%s/files/%s", target.Domain, title)

	return domain.NewRecord(domain.RecordTypeDocument, url, "osint").
		WithField("title", title)
}

func (c *Collector) breach(target domain.Target) *domain.Record {
	first, last := c.person()
	email := personalEmail(first, last, target.Domain)
	corpus := c.rng.Pick(breachCorpora)

	return domain.NewRecord(domain.RecordTypeBreach, email, "osint").
		WithField("name", first+" "+last).
		WithField("email", email).
		WithField("corpus", corpus)
}

func personalEmail(first, last, domainName string) string {
	return strings.ToLower(first[:1] + "." + last + "@" + domainName)
}
