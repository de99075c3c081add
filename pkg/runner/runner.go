package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/aglint/pkg/fsutil"
	"github.com/yaklabco/aglint/pkg/linter"
)

// Runner orchestrates multi-file linting using a shared linter.Linter.
type Runner struct {
	Linter *linter.Linter
}

// New creates a Runner driving the given linter.
func New(l *linter.Linter) *Runner {
	return &Runner{Linter: l}
}

// Run lints the files named by opts.Paths concurrently and returns a
// deterministic (by opts.Paths order) collection of outcomes plus aggregate
// stats. If opts.Fix is set, files whose content changed are rewritten
// atomically via fsutil.WriteAtomic.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{Files: make([]FileOutcome, 0, len(opts.Paths))}

	if len(opts.Paths) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(opts.Paths) {
		jobs = len(opts.Paths)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Fix)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range opts.Paths {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(opts.Paths))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range opts.Paths {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, fix bool) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.lintOne(ctx, path, fix)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) lintOne(ctx context.Context, path string, fix bool) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	outcome.Original = content

	result, err := r.Linter.Lint(string(content), fix)
	if err != nil {
		outcome.Error = fmt.Errorf("lint %s: %w", path, err)
		return outcome
	}
	outcome.Result = result

	if fix && result.FixApplied {
		mode := info.Mode
		if mode == 0 {
			mode = fsutil.DefaultFileMode
		}
		if err := fsutil.WriteAtomic(ctx, path, []byte(result.Fixed), mode); err != nil {
			outcome.Error = fmt.Errorf("write %s: %w", path, err)
		}
	}

	return outcome
}
