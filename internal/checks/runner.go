package checks

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/docguard/internal/logger"
	"github.com/harrison/docguard/internal/models"
)

// Runner executes a list of checks against one document.
type Runner struct {
	checks   []Check
	parallel int
	log      logger.Logger
}

// NewRunner creates a runner. parallel bounds the number of checks running at
// once; 0 runs every check in its own goroutine and 1 runs them sequentially.
func NewRunner(checks []Check, parallel int, log logger.Logger) *Runner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Runner{checks: checks, parallel: parallel, log: log}
}

// Run executes every check and returns their results in registration order.
// A nil doc fails every check with a document_missing result. The only error
// is ctx cancellation.
func (r *Runner) Run(ctx context.Context, doc *models.Document) ([]models.CheckResult, error) {
	results := make([]models.CheckResult, len(r.checks))

	if doc == nil {
		for i, c := range r.checks {
			results[i] = models.DocumentMissing(c.Name)
		}
		return results, nil
	}

	runCheck := func(i int) {
		results[i] = r.runOne(r.checks[i], doc)
	}

	if r.parallel == 1 {
		for i := range r.checks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			runCheck(i)
		}
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	if r.parallel > 1 {
		g.SetLimit(r.parallel)
	}
	for i := range r.checks {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			runCheck(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne runs a single check, turning a panic into a failed result.
func (r *Runner) runOne(c Check, doc *models.Document) (res models.CheckResult) {
	defer func() {
		if p := recover(); p != nil {
			r.log.LogError(fmt.Sprintf("check %s panicked: %v", c.Name, p))
			res = models.Fail(c.Name, fmt.Sprintf("check panicked: %v", p))
			res.Path = doc.Path
		}
	}()

	res = c.Run(doc)
	res.Name = c.Name
	res.Path = doc.Path
	r.log.LogTrace(res.String())
	return res
}
