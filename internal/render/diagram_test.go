package render

import (
	"reflect"
	"testing"

	"jumptree/internal/history"
)

func TestDrawRootOnly(t *testing.T) {
	rec := history.NewRecord()
	d := Draw(rec)

	want := []string{"  * "}
	if !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("Lines = %q, want %q", d.Lines, want)
	}
	if !reflect.DeepEqual(d.Highlights, []Span{{Line: 0, Col: 2}}) {
		t.Errorf("Highlights = %v, want the root marker", d.Highlights)
	}
}

func TestDrawTwoChildren(t *testing.T) {
	rec := history.NewRecord()
	rec.Forward(history.Intern("left"))
	rec.Backward()
	rec.Forward(history.Intern("right"))

	d := Draw(rec)
	want := []string{
		"    *   ",
		"  *   * ",
	}
	if !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("Lines = %q, want %q", d.Lines, want)
	}
	// Current is the second child: line 1, centered in its 4-column span.
	if !reflect.DeepEqual(d.Highlights, []Span{{Line: 1, Col: 6}}) {
		t.Errorf("Highlights = %v, want [{1 6}]", d.Highlights)
	}
}

func TestDrawKeepsLeafAlignment(t *testing.T) {
	// root
	//  ├ foo ─ bar
	//  └ baz
	// The finished baz branch turns into a placeholder so bar's line still
	// spans the full width.
	rec := history.NewRecord()
	rec.Forward(history.Intern("foo"))
	rec.Forward(history.Intern("bar"))
	rec.Backward()
	rec.Forward(history.Intern("baz"))

	d := Draw(rec)
	want := []string{
		"    *   ",
		"  *   * ",
		"  *     ",
	}
	if !reflect.DeepEqual(d.Lines, want) {
		t.Errorf("Lines = %q, want %q", d.Lines, want)
	}
}

func TestDrawWidthsSumOverChildren(t *testing.T) {
	rec := history.NewRecord()
	syms := []string{"a", "b", "c"}
	for _, s := range syms {
		rec.Forward(history.Intern(s))
		rec.Backward()
	}

	widths := make(map[*history.Node]int)
	measure(rec.Root, widths)

	if widths[rec.Root] != 3 {
		t.Errorf("width(root) = %d, want sum of children = 3", widths[rec.Root])
	}
	for _, c := range rec.Root.Children {
		if widths[c] != 1 {
			t.Errorf("width(%s) = %d, want the childless floor 1", c.Sym.Name(), widths[c])
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	rec := history.NewRecord()
	for _, s := range []string{"x", "y", "z"} {
		rec.Forward(history.Intern(s))
	}
	first := Draw(rec)
	second := Draw(rec)
	if !reflect.DeepEqual(first, second) {
		t.Error("drawing an unchanged record twice must be byte-identical")
	}
}

func TestDrawLinesAreFixedWidth(t *testing.T) {
	rec := history.NewRecord()
	rec.Forward(history.Intern("deep"))
	rec.Forward(history.Intern("deeper"))
	rec.Backward()
	rec.Forward(history.Intern("wide"))

	d := Draw(rec)
	for i, line := range d.Lines {
		if len(line) != d.Width() {
			t.Errorf("line %d has %d columns, want %d", i, len(line), d.Width())
		}
	}
}

func TestCacheReusesUntilMutation(t *testing.T) {
	cache, err := NewCache(8)
	if err != nil {
		t.Fatal(err)
	}
	rec := history.NewRecord()
	rec.Forward(history.Intern("a"))

	first := cache.Get("/src/proj", rec)
	if second := cache.Get("/src/proj", rec); second != first {
		t.Error("unchanged record should hit the cache")
	}

	rec.Forward(history.Intern("b"))
	if third := cache.Get("/src/proj", rec); third == first {
		t.Error("mutated record must be redrawn")
	}
}
