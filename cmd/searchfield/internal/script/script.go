// Package script parses the scripted interactions played by the CLI.
//
// A script is a list of steps, one per string:
//
//	type <text>   insert text into the field
//	click         press the search button
//	move <x> <y>  move the pointer
//	wait <dur>    advance time, rendering a frame per tick
//	done          finish the running search
package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies a step.
type Kind int

const (
	KindType Kind = iota
	KindClick
	KindMove
	KindWait
	KindDone
)

// String returns the step keyword.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindClick:
		return "click"
	case KindMove:
		return "move"
	case KindWait:
		return "wait"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step is one parsed script line.
type Step struct {
	Kind Kind
	Text string
	X, Y float64
	Wait time.Duration
}

// String formats the step the way it is written.
func (s Step) String() string {
	switch s.Kind {
	case KindType:
		return "type " + s.Text
	case KindMove:
		return fmt.Sprintf("move %g %g", s.X, s.Y)
	case KindWait:
		return "wait " + s.Wait.String()
	default:
		return s.Kind.String()
	}
}

// Parse parses every line, reporting the first bad one by index.
func Parse(lines []string) ([]Step, error) {
	steps := make([]Step, 0, len(lines))
	for i, line := range lines {
		step, err := ParseStep(line)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// ParseStep parses a single line.
func ParseStep(line string) (Step, error) {
	line = strings.TrimSpace(line)
	keyword, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(keyword) {
	case "type":
		if rest == "" {
			return Step{}, fmt.Errorf("type needs text")
		}
		return Step{Kind: KindType, Text: rest}, nil
	case "click":
		return Step{Kind: KindClick}, nil
	case "done":
		return Step{Kind: KindDone}, nil
	case "wait":
		d, err := time.ParseDuration(rest)
		if err != nil {
			return Step{}, fmt.Errorf("wait: %w", err)
		}
		if d < 0 {
			return Step{}, fmt.Errorf("wait: negative duration %v", d)
		}
		return Step{Kind: KindWait, Wait: d}, nil
	case "move":
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return Step{}, fmt.Errorf("move needs x and y, got %q", rest)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Step{}, fmt.Errorf("move x: %w", err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Step{}, fmt.Errorf("move y: %w", err)
		}
		return Step{Kind: KindMove, X: x, Y: y}, nil
	case "":
		return Step{}, fmt.Errorf("empty step")
	default:
		return Step{}, fmt.Errorf("unknown step %q", keyword)
	}
}
