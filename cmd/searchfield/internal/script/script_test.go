package script

import (
	"strings"
	"testing"
	"time"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		line string
		want Step
	}{
		{"click", Step{Kind: KindClick}},
		{"  DONE ", Step{Kind: KindDone}},
		{"type hello world", Step{Kind: KindType, Text: "hello world"}},
		{"wait 250ms", Step{Kind: KindWait, Wait: 250 * time.Millisecond}},
		{"wait 0s", Step{Kind: KindWait}},
		{"move 12.5 20", Step{Kind: KindMove, X: 12.5, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseStep(tt.line)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseStep(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseStep_Errors(t *testing.T) {
	tests := []struct {
		line, want string
	}{
		{"", "empty step"},
		{"jump", "unknown step"},
		{"type", "needs text"},
		{"wait", "wait"},
		{"wait soon", "wait"},
		{"wait -1s", "negative"},
		{"move 1", "needs x and y"},
		{"move a 2", "move x"},
		{"move 1 b", "move y"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseStep(tt.line)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("ParseStep(%q) = %v, want error containing %q", tt.line, err, tt.want)
			}
		})
	}
}

func TestParse_ReportsLine(t *testing.T) {
	_, err := Parse([]string{"click", "wait 1s", "fly"})
	if err == nil || !strings.Contains(err.Error(), "step 3") {
		t.Fatalf("Parse() = %v, want error naming step 3", err)
	}
}

func TestStep_StringRoundTrip(t *testing.T) {
	for _, line := range []string{"click", "done", "type go", "wait 1.5s", "move 3 4"} {
		step, err := ParseStep(line)
		if err != nil {
			t.Fatal(err)
		}
		again, err := ParseStep(step.String())
		if err != nil || again != step {
			t.Errorf("%q -> %q -> %+v (%v)", line, step.String(), again, err)
		}
	}
}
