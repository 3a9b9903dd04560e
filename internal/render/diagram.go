// Package render lays out a navigation tree as a centered, leaf-aligned
// text diagram.
package render

import (
	"jumptree/internal/history"
)

// emptyWidth is the column budget of one blank leaf-unit. It governs
// spacing only, never tree semantics.
const emptyWidth = 4

// marker is the glyph placed at each node's center column.
const marker = '*'

// Span locates one highlighted cell in a diagram, zero-based.
type Span struct {
	Line int
	Col  int
}

// Diagram is a fixed-width text block plus the cells the display surface
// should style. Columns are byte offsets; every line is plain ASCII.
type Diagram struct {
	Lines      []string
	Highlights []Span
}

// slot is one cell of a layout level: either a live node or a numeric
// placeholder of blank columns carried down from a finished branch.
type slot struct {
	node *history.Node
	pad  int
}

// Draw renders the record's tree top-down, each node centered over the
// span its descendants occupy, with the current position reported as a
// highlight. Drawing the same record twice yields identical output.
func Draw(rec *history.Record) *Diagram {
	widths := make(map[*history.Node]int)
	measure(rec.Root, widths)

	d := &Diagram{}
	level := []slot{{node: rec.Root}}
	for len(level) > 0 && !allPlaceholders(level) {
		line := make([]byte, 0, 64)
		var next []slot

		for _, s := range level {
			span := s.pad
			if s.node != nil {
				span = emptyWidth * widths[s.node]
			}
			start := len(line)
			for i := 0; i < span; i++ {
				line = append(line, ' ')
			}
			if s.node == nil {
				next = append(next, s)
				continue
			}

			mid := start + span/2
			line[mid] = marker
			if s.node == rec.Current {
				d.Highlights = append(d.Highlights, Span{Line: len(d.Lines), Col: mid})
			}

			if len(s.node.Children) == 0 {
				next = append(next, slot{pad: emptyWidth})
			} else {
				for _, c := range s.node.Children {
					next = append(next, slot{node: c})
				}
			}
		}

		d.Lines = append(d.Lines, string(line))
		level = next
	}
	return d
}

// Width returns the number of columns the diagram occupies.
func (d *Diagram) Width() int {
	w := 0
	for _, l := range d.Lines {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

// measure fills widths bottom-up: a node's width in leaf-units is the sum
// of its children's, floored at 1 so childless nodes still occupy space.
func measure(n *history.Node, widths map[*history.Node]int) int {
	w := 0
	for _, c := range n.Children {
		w += measure(c, widths)
	}
	if w < 1 {
		w = 1
	}
	widths[n] = w
	return w
}

func allPlaceholders(level []slot) bool {
	for _, s := range level {
		if s.node != nil {
			return false
		}
	}
	return true
}
