package digits

import (
	"math/rand/v2"
	"strings"
	"testing"
)

// sequenceSource returns values from a fixed cycle.
type sequenceSource struct {
	values []int
	next   int
	calls  []int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestLine_UsesOneDrawPerCharacter(t *testing.T) {
	src := &sequenceSource{values: []int{4, 8, 2, 1}}

	got := Line(src, 6)
	if got != "482148" {
		t.Errorf("Line() = %q, want %q", got, "482148")
	}
	if len(src.calls) != 6 {
		t.Fatalf("expected 6 draws, got %d", len(src.calls))
	}
	for i, n := range src.calls {
		if n != 10 {
			t.Errorf("draw %d used bound %d, want 10", i, n)
		}
	}
}

func TestLine_LengthAndAlphabet(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))

	for _, length := range []int{1, 4, 17, 256} {
		line := Line(src, length)
		if len(line) != length {
			t.Errorf("len(Line(%d)) = %d", length, len(line))
		}
		if strings.Trim(line, Alphabet) != "" {
			t.Errorf("Line(%d) = %q contains non-digit characters", length, line)
		}
	}
}

func TestLine_CoversWholeAlphabet(t *testing.T) {
	src := rand.New(rand.NewPCG(42, 7))
	line := Line(src, 5000)

	for _, d := range Alphabet {
		if !strings.ContainsRune(line, d) {
			t.Errorf("digit %q never drawn in 5000 characters", d)
		}
	}
}

func TestLine_SameSeedSameOutput(t *testing.T) {
	a := Line(rand.New(rand.NewPCG(9, 9)), 32)
	b := Line(rand.New(rand.NewPCG(9, 9)), 32)
	if a != b {
		t.Errorf("expected identical lines for identical seeds, got %q and %q", a, b)
	}
}
