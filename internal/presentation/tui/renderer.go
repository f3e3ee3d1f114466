package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// TraceMarkdown describes a result as a markdown heading plus a table of steps.
func TraceMarkdown(res domain.Result) string {
	var b strings.Builder
	p := res.Puzzle
	fmt.Fprintf(&b, "# Jugs %d and %d, measuring %d\n\n", p.X, p.Y, p.Z)

	if !res.Solved() {
		fmt.Fprintf(&b, "**%s** (%s)\n", domain.NoSolution, res.Outcome)
		return b.String()
	}

	b.WriteString("| Step | Action | Bucket X | Bucket Y | Status |\n")
	b.WriteString("|---:|---|---:|---:|---|\n")
	for _, step := range res.Trace {
		status := ""
		if step.Status != nil {
			status = string(*step.Status)
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %d | %s |\n", step.Number, step.Action, step.BucketX, step.BucketY, status)
	}
	return b.String()
}
