package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/waterjug/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a trace: one node per jug state, one edge
// per step labelled with its action.
// It applies semantic styling:
// - Start (0, 0): ((Circle))
// - Goal: [[Subroutine]] with the "solved" class
// - Default: [Rectangle]
func GenerateMermaid(res domain.Result) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	start := domain.State{}
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", stateID(start), start))

	if !res.Solved() {
		sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> none[\"%s\"]\n", stateID(start), res.Outcome, domain.NoSolution))
		return sb.String()
	}

	declared := map[domain.State]bool{start: true}
	prev := start
	for _, step := range res.Trace {
		cur := step.State()
		if !declared[cur] {
			declared[cur] = true
			opener, closer := "[", "]"
			if step.Solved() {
				opener, closer = "[[", "]]"
			}
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", stateID(cur), opener, cur, closer))
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%d. %s\" --> %s\n", stateID(prev), step.Number, step.Action, stateID(cur)))
		prev = cur
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef solved fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s solved;\n", stateID(prev)))

	return sb.String()
}

func stateID(s domain.State) string {
	return fmt.Sprintf("s%d_%d", s.X, s.Y)
}
