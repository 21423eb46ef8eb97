package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Position is a resolved source location: 1-based line and column and the
// text of the enclosing line.
type Position struct {
	Line int
	Col  int
	Text string
}

// Locate resolves a byte offset into src to a line and column. Offsets
// outside the source clamp to its ends, so a fault at end-of-input points
// one past the last character.
func Locate(src string, off int) Position {
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}
	return Position{
		Line: 1 + strings.Count(src[:start], "\n"),
		Col:  off - start + 1,
		Text: src[start:end],
	}
}

// Annotate renders err with a caret snippet pointing at its position in
// src:
//
//	expected ')', found eof
//	  1 | (1 + 2
//	    |       ^
//
// Errors that carry no position render as their plain message.
func Annotate(src string, err error) string {
	var ie InputError
	if !errors.As(err, &ie) {
		return err.Error()
	}
	p := Locate(src, ie.Pos())
	gutter := strconv.Itoa(p.Line)
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(gutter)
	b.WriteString(" | ")
	b.WriteString(p.Text)
	b.WriteByte('\n')
	b.WriteString("  ")
	b.WriteString(strings.Repeat(" ", len(gutter)))
	b.WriteString(" | ")
	b.WriteString(strings.Repeat(" ", p.Col-1))
	b.WriteByte('^')
	return b.String()
}
