package main

import (
	"context"
	"fmt"
	"os"

	"github.com/healang/healex/internal/discovery"
	"github.com/healang/healex/internal/report"
	"github.com/healang/healex/internal/scan"
)

func main() {
	root := "testdata/sample"

	// Scan the bundled sample sources
	sources, err := discovery.Discover(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering sources: %v\n", err)
		os.Exit(1)
	}

	outcomes := scan.NewPool(1).ScanAll(context.Background(), sources)

	collector := scan.NewCollector(root)
	for i := range outcomes {
		oc := &outcomes[i]
		if oc.Err != nil {
			collector.AddFailure(oc.Source.RelativePath, oc.Err)
			continue
		}
		collector.Add(oc.Source.RelativePath, oc.Tokens)
	}
	res := collector.Result()

	// Generate HTML report
	reporter := report.NewHTMLReporter()
	file, err := os.Create("testdata/html_demo/report.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := reporter.Format(res, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ HTML report generated: testdata/html_demo/report.html")
	fmt.Printf("  Files: %d (%d passed, %d failed), %d tokens\n",
		res.Summary.Files, res.Summary.Passed, res.Summary.Failed, res.Summary.Tokens)
}
