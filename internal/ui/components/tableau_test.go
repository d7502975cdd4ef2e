package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/divtutor/internal/grid"
	"github.com/abhisek/divtutor/internal/longdiv"
	"github.com/abhisek/divtutor/internal/problemgen"
)

func TestTableau_InitialLayout(t *testing.T) {
	p, err := problemgen.NewProblem(768, 24)
	if err != nil {
		t.Fatal(err)
	}
	e := longdiv.New(p, longdiv.Options{})
	e.Start()

	lines := strings.Split(ansi.Strip(NewTableau(e.Grid()).View()), "\n")

	want := []string{
		"          ?",
		"      ─────────",
		" 2  4│ 7  6  8",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTableau_SolvedRound(t *testing.T) {
	p, err := problemgen.NewProblem(768, 24)
	if err != nil {
		t.Fatal(err)
	}
	e := longdiv.New(p, longdiv.Options{})
	longdiv.Solve(e, nil)

	out := ansi.Strip(NewTableau(e.Grid()).View())
	lines := strings.Split(out, "\n")

	if lines[0] != "          3  2" {
		t.Errorf("quotient line = %q", lines[0])
	}
	for _, want := range []string{" 7  2  ↓", " 4  8", " 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("tableau missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "─────────") != 1 {
		t.Errorf("expected a single division bar:\n%s", out)
	}
}

func TestTableau_NoTrailingPadding(t *testing.T) {
	p, err := problemgen.NewProblem(120, 24)
	if err != nil {
		t.Fatal(err)
	}
	e := longdiv.New(p, longdiv.Options{})
	e.Start()
	e.HandleInput(9)
	e.HandleEnter()

	check := func(stage string) {
		t.Helper()
		for i, line := range strings.Split(ansi.Strip(NewTableau(e.Grid()).View()), "\n") {
			if strings.TrimRight(line, " ") != line {
				t.Errorf("%s: line %d has trailing padding: %q", stage, i, line)
			}
		}
	}

	check("wrong digit")
	longdiv.Solve(e, nil)
	check("solved")
}

func TestTableau_Empty(t *testing.T) {
	if got := (Tableau{}).View(); got != "" {
		t.Errorf("nil grid view = %q, want empty", got)
	}
	if got := NewTableau(grid.New()).View(); got != "" {
		t.Errorf("empty grid view = %q, want empty", got)
	}
}

func TestCellStyle_Precedence(t *testing.T) {
	wrongActive := grid.TagActive.With(grid.TagWrong)
	if CellStyle(wrongActive).GetBackground() != CellStyle(grid.TagWrong).GetBackground() {
		t.Error("wrong flash must win over the active style")
	}
	highlightCorrect := grid.TagCorrect.With(grid.TagHighlight)
	if CellStyle(highlightCorrect).GetBackground() != CellStyle(grid.TagHighlight).GetBackground() {
		t.Error("highlight must win over correct")
	}
}

func TestSpeechBubble(t *testing.T) {
	out := ansi.Strip(SpeechBubble("(o_o)", "How many 24s fit in 76?", 60))
	if !strings.Contains(out, "How many 24s fit in 76?") {
		t.Errorf("bubble missing text:\n%s", out)
	}
	if !strings.Contains(out, "(o_o)") {
		t.Errorf("bubble missing avatar:\n%s", out)
	}
}

func TestDigitTrack(t *testing.T) {
	cases := []struct {
		done, total int
		want        string
	}{
		{0, 2, "Digits ◉ ○  0/2"},
		{1, 3, "Digits ● ◉ ○  1/3"},
		{2, 2, "Digits ● ●  2/2"},
		{5, 2, "Digits ● ●  2/2"},
		{0, 0, "Digits  0/0"},
	}
	for _, tc := range cases {
		if got := ansi.Strip(NewDigitTrack(tc.done, tc.total).View()); got != tc.want {
			t.Errorf("DigitTrack(%d, %d) = %q, want %q", tc.done, tc.total, got, tc.want)
		}
	}
}
