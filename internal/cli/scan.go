package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/healang/healex/internal/discovery"
	"github.com/healang/healex/internal/logger"
	"github.com/healang/healex/internal/scan"
)

// Scan executes the scan workflow: discover source files under the
// configured search path, tokenize each one, and persist the
// aggregated result
func Scan(ctx context.Context, config *Config) (int, error) {
	startTime := time.Now()

	logger.Debug("discovering sources in %s", config.SearchPath)

	// Step 1: Discover source files
	sources, err := discovery.Discover(config.SearchPath)
	if err != nil {
		return 1, fmt.Errorf("failed to discover sources: %w", err)
	}

	if len(sources) == 0 {
		fmt.Println("No source files found (*.hl)")
		return 0, nil
	}

	logger.Debug("found %d source file(s)", len(sources))

	// Step 2: Tokenize the files (parallel or sequential based on config)
	pool := scan.NewPool(config.Parallelism)
	outcomes := pool.ScanAll(ctx, sources)

	// Step 3: Aggregate outcomes
	collector := scan.NewCollector(config.SearchPath)
	for i := range outcomes {
		oc := &outcomes[i]
		if oc.Err != nil {
			collector.AddFailure(oc.Source.RelativePath, oc.Err)
			continue
		}
		collector.Add(oc.Source.RelativePath, oc.Tokens)
		logger.Debug("scanned %s: %d token(s)", oc.Source.RelativePath, len(oc.Tokens)-1)
	}

	// Step 4: Save scan data
	result := collector.Result()
	store := scan.NewStore(config.ScanFile)
	if err := store.Save(result); err != nil {
		return 1, fmt.Errorf("failed to save scan result: %w", err)
	}

	// Step 5: Display summary
	printFailures(result)

	summary := result.Summary
	fmt.Printf("\n")
	fmt.Printf("Files:  %d passed, %d failed, %d total\n",
		summary.Passed, summary.Failed, summary.Files)
	fmt.Printf("Tokens: %d\n", summary.Tokens)
	fmt.Printf("Time:   %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("\n")
	fmt.Printf("Scan data written to %s\n", config.ScanFile)

	return summary.ExitCode(), nil
}

// printFailures lists files whose scan aborted, compiler style
func printFailures(result *scan.Result) {
	for i := range result.Files {
		fr := &result.Files[i]
		if fr.OK() {
			continue
		}
		if fr.Failure.Row > 0 {
			fmt.Printf("FAIL %s:%d:%d: %s\n", fr.Path, fr.Failure.Row, fr.Failure.Col, fr.Failure.Message)
		} else {
			fmt.Printf("FAIL %s: %s\n", fr.Path, fr.Failure.Message)
		}
	}
}
