package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/ttasm/program"
)

// VerificationReport represents a complete lint report
type VerificationReport struct {
	Name         string
	InstCount    int
	WordCount    int
	Issues       []Issue
	StructIssues []Issue
	FlowIssues   []Issue
}

// GenerateReport runs the lint checks and sorts the issues by type.
func GenerateReport(name string, p program.Program) *VerificationReport {
	report := &VerificationReport{
		Name:      name,
		InstCount: len(p),
		WordCount: program.NewImage(p).Len(),
		Issues:    RunLint(p),
	}

	for _, issue := range report.Issues {
		if issue.Type == IssueStruct {
			report.StructIssues = append(report.StructIssues, issue)
		} else {
			report.FlowIssues = append(report.FlowIssues, issue)
		}
	}

	return report
}

// Passed reports whether no issues were found.
func (r *VerificationReport) Passed() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "LINT REPORT: %s\n", r.Name)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%d instructions, %d words\n\n", r.InstCount, r.WordCount)

	if r.Passed() {
		fmt.Fprintln(w, "✓ No lint issues found!")
		return
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Type", "Addr", "Inst", "Message"})
	for n, issue := range r.Issues {
		t.AppendRow(table.Row{
			n + 1,
			issue.Type,
			fmt.Sprintf("%04x", issue.Addr),
			issue.Index,
			issue.Message,
		})
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintf(w, "\n⚠ %d issues (%d STRUCT, %d FLOW)\n",
		len(r.Issues), len(r.StructIssues), len(r.FlowIssues))
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
