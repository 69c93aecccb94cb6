package main

import (
	"fmt"
	"os"

	"github.com/sourcegraph/mlock-go/internal/monitor"
	"github.com/sourcegraph/mlock-go/internal/proc"
)

// printDiagnostics prints where the tool is running from, which makes reports
// produced on build machines attributable to a checkout and binary.
func printDiagnostics() {
	cwd, _ := os.Getwd()
	exe, _ := os.Executable()

	fmt.Printf("Current directory: %s\n", cwd)
	fmt.Printf("Executable: %s\n", exe)
}

func printLimits(limit proc.MemlockLimit) {
	fmt.Printf("\nMlock Monitor for `go test`\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Locked memory limit (soft, kb): %s\n", limit.Soft)
	fmt.Printf("Locked memory limit (hard, kb): %s\n\n", limit.Hard)
}

func printReport(db *monitor.Database, testOutput string) {
	fmt.Println(db.Render())

	fmt.Printf("\nOutput of `go test`\n")
	fmt.Printf("===================\n")
	fmt.Println(testOutput)
}
