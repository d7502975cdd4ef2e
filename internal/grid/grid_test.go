package grid

import "testing"

func TestPlaceAndGet(t *testing.T) {
	g := New()
	g.Place(1, 2, "7", TagBorderBottom)

	c, ok := g.Get(1, 2)
	if !ok {
		t.Fatal("expected cell at (1,2)")
	}
	if c.Content != "7" {
		t.Errorf("Content = %q, want %q", c.Content, "7")
	}
	if !c.Tags.Has(TagBorderBottom) {
		t.Errorf("expected border-bottom tag, got %s", c.Tags)
	}

	if _, ok := g.Get(0, 0); ok {
		t.Error("expected no cell at (0,0)")
	}
	if g.Has(5, 5) {
		t.Error("Has(5,5) should be false")
	}
}

func TestPlaceOverwrites(t *testing.T) {
	g := New()
	g.Place(0, 3, "?", TagActive)
	g.Place(0, 3, "3", TagCorrect)

	c, _ := g.Get(0, 3)
	if c.Content != "3" {
		t.Errorf("Content = %q, want 3", c.Content)
	}
	if c.Tags.Has(TagActive) || !c.Tags.Has(TagCorrect) {
		t.Errorf("tags = %s, want correct only", c.Tags)
	}
}

func TestTags(t *testing.T) {
	g := New()
	g.Place(0, 0, "4")

	if !g.AddTag(0, 0, TagWrong) {
		t.Fatal("AddTag on existing cell returned false")
	}
	c, _ := g.Get(0, 0)
	if !c.Tags.Has(TagWrong) {
		t.Error("expected wrong tag")
	}

	g.RemoveTag(0, 0, TagWrong)
	c, _ = g.Get(0, 0)
	if c.Tags.Has(TagWrong) {
		t.Error("wrong tag should be removed")
	}

	if g.AddTag(9, 9, TagActive) {
		t.Error("AddTag on absent cell should return false")
	}
	if g.RemoveTag(9, 9, TagActive) {
		t.Error("RemoveTag on absent cell should return false")
	}
}

func TestTagString(t *testing.T) {
	tag := TagBorderBottom.With(TagCorrect)
	if got := tag.String(); got != "border-bottom|correct" {
		t.Errorf("String() = %q", got)
	}
	if got := tag.Without(TagCorrect).String(); got != "border-bottom" {
		t.Errorf("Without() = %q", got)
	}
}

func TestBounds(t *testing.T) {
	g := New()
	g.Place(3, 1, "a")
	g.Place(0, 4, "b")
	g.Place(0, 1, "c")

	rows, cols := g.Bounds()
	if rows != 4 || cols != 5 {
		t.Errorf("Bounds = (%d,%d), want (4,5)", rows, cols)
	}

	if g.Has(0, 0) || g.Has(3, 4) {
		t.Error("unplaced coordinates inside the bounds must be absent")
	}
	if !g.Has(3, 1) || !g.Has(0, 4) {
		t.Error("placed cells missing")
	}
}

func TestObserver(t *testing.T) {
	g := New()
	var seen []Cell
	g.Observe(func(c Cell) { seen = append(seen, c) })

	g.Place(1, 0, "2")
	g.AddTag(1, 0, TagHighlight)
	g.SetContent(1, 0, "5")
	g.AddTag(7, 7, TagHighlight) // absent, no notification

	if len(seen) != 3 {
		t.Fatalf("observer saw %d mutations, want 3", len(seen))
	}
	if seen[2].Content != "5" || !seen[2].Tags.Has(TagHighlight) {
		t.Errorf("last mutation = %+v", seen[2])
	}
}

func TestString(t *testing.T) {
	g := New()
	g.Place(0, 1, "3", TagBorderBottom)
	g.Place(1, 0, "2", TagBorderRight)
	g.Place(1, 1, "6", TagBorderBottom)

	want := "  3\n  --\n2|6\n  --\n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}
}
