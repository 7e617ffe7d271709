package scan

import (
	"context"
	"os"
	"sync"

	"github.com/healang/healex/internal/discovery"
	hlerrors "github.com/healang/healex/internal/errors"
	"github.com/healang/healex/internal/lexer"
	"github.com/healang/healex/internal/logger"
)

// Outcome is the result of reading and tokenizing one source file
type Outcome struct {
	Source *discovery.SourceFile
	Tokens []lexer.Token
	Err    error
}

// Pool tokenizes source files with a bounded number of workers
type Pool struct {
	maxWorkers int
}

// NewPool creates a new pool; worker counts below 1 are clamped to 1
func NewPool(maxWorkers int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Pool{maxWorkers: maxWorkers}
}

// ScanAll tokenizes every source file, preserving input order in the
// returned outcomes
func (p *Pool) ScanAll(ctx context.Context, sources []discovery.SourceFile) []Outcome {
	n := len(sources)
	if n == 0 {
		return nil
	}

	// If only one worker or one file, fall back to sequential scanning
	if p.maxWorkers == 1 || n == 1 {
		outcomes := make([]Outcome, n)
		for i := range sources {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Source: &sources[i], Err: err}
				continue
			}
			outcomes[i] = scanOne(&sources[i])
		}
		return outcomes
	}

	logger.Debug("scanning %d files with %d workers", n, p.maxWorkers)

	// Buffered channels for job distribution and result collection
	jobs := make(chan int, n)
	results := make(chan indexedOutcome, n)

	var wg sync.WaitGroup
	for w := 0; w < p.maxWorkers; w++ {
		wg.Add(1)
		go p.worker(ctx, jobs, results, &wg, sources)
	}

	for i := range sources {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]Outcome, n)
	for res := range results {
		outcomes[res.index] = res.outcome
	}
	return outcomes
}

// indexedOutcome carries an outcome back with its input position
type indexedOutcome struct {
	index   int
	outcome Outcome
}

// worker processes file indexes from jobs until the channel drains
func (p *Pool) worker(ctx context.Context, jobs <-chan int, results chan<- indexedOutcome, wg *sync.WaitGroup, sources []discovery.SourceFile) {
	defer wg.Done()

	for i := range jobs {
		if err := ctx.Err(); err != nil {
			results <- indexedOutcome{index: i, outcome: Outcome{Source: &sources[i], Err: err}}
			continue
		}
		results <- indexedOutcome{index: i, outcome: scanOne(&sources[i])}
	}
}

// scanOne reads and tokenizes a single source file
func scanOne(src *discovery.SourceFile) Outcome {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return Outcome{Source: src, Err: hlerrors.NewFileError(src.RelativePath, err)}
	}

	toks, err := lexer.Tokenize(string(data))
	if err != nil {
		return Outcome{Source: src, Err: err}
	}

	return Outcome{Source: src, Tokens: toks}
}
