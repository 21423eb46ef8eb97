package calc

import (
	"errors"
	"testing"
)

func TestScan(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		// whitespace
		{"", []string{"eof"}},
		{" \t\r\n\v\f", []string{"eof"}},
		// numbers
		{"0", []string{"number(0)", "eof"}},
		{"9876543210", []string{"number(9876543210)", "eof"}},
		{"1.5", []string{"number(1.5)", "eof"}},
		{".5", []string{"number(0.5)", "eof"}},
		{"2.", []string{"number(2)", "eof"}},
		{"1e3", []string{"number(1000)", "eof"}},
		{"1E+3", []string{"number(1000)", "eof"}},
		{"1e-3", []string{"number(0.001)", "eof"}},
		{"1.5e2", []string{"number(150)", "eof"}},
		// exponent marker without digits is left for the next token
		{"1e", []string{"number(1)", "ident(e)", "eof"}},
		{"1e+", []string{"number(1)", "ident(e)", "add", "eof"}},
		{"1E-", []string{"number(1)", "ident(E)", "sub", "eof"}},
		// a second dot starts a new literal
		{"1.2.3", []string{"number(1.2)", "number(0.3)", "eof"}},
		// identifiers
		{"x", []string{"ident(x)", "eof"}},
		{"foo_1", []string{"ident(foo_1)", "eof"}},
		{"pi e", []string{"ident(pi)", "ident(e)", "eof"}},
		// operators and punctuation
		{"+-*/%^(),", []string{"add", "sub", "mul", "div", "mod", "pow", "lparen", "rparen", "comma", "eof"}},
		// the round trip from the docs
		{"1 + (2 * 3)", []string{"number(1)", "add", "lparen", "number(2)", "mul", "number(3)", "rparen", "eof"}},
	}
	for _, c := range cases {
		toks, err := scan(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.want) {
			t.Errorf("scanning %q: want %d tokens, got %d: %v", c.src, len(c.want), len(toks), toks)
			continue
		}
		for i, w := range c.want {
			if got := toks[i].String(); got != w {
				t.Errorf("scanning %q: token %d: want %s, got %s", c.src, i, w, got)
			}
		}
	}
}

func TestScanSpans(t *testing.T) {
	toks, err := scan("  12 + pi")
	if err != nil {
		t.Fatal(err)
	}
	want := []struct{ start, end int }{
		{2, 4}, // 12
		{5, 6}, // +
		{7, 9}, // pi
		{9, 9}, // eof
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %v", len(want), toks)
	}
	for i, w := range want {
		if toks[i].start != w.start || toks[i].end != w.end {
			t.Errorf("token %d (%v): want span [%d,%d), got [%d,%d)",
				i, toks[i], w.start, w.end, toks[i].start, toks[i].end)
		}
	}
}

func TestScanIntFloatTags(t *testing.T) {
	cases := []struct {
		src   string
		isInt bool
	}{
		{"1", true},
		{"10", true},
		{"9223372036854775807", true},
		{"1.0", false},
		{".1", false},
		{"1.", false},
		{"1e0", false},
		{"1E2", false},
	}
	for _, c := range cases {
		toks, err := scan(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if got := toks[0].val.IsInt(); got != c.isInt {
			t.Errorf("scanning %q: IsInt = %v, want %v", c.src, got, c.isInt)
		}
	}
}

func TestScanErrors(t *testing.T) {
	badChar := []struct {
		src string
		off int
	}{
		{"$", 0},
		{"1 $", 2},
		{"a @ b", 2},
		{"1 + #2", 4},
	}
	for _, c := range badChar {
		_, err := scan(c.src)
		var bc *BadCharError
		if !errors.As(err, &bc) {
			t.Errorf("scanning %q: want BadCharError, got %v", c.src, err)
			continue
		}
		if bc.Off != c.off {
			t.Errorf("scanning %q: error at %d, want %d", c.src, bc.Off, c.off)
		}
	}

	badNum := []struct {
		src string
		off int
	}{
		{".", 0},
		{"1 + .", 4},
		// out of range for int64
		{"9223372036854775808", 0},
		{"99999999999999999999", 0},
	}
	for _, c := range badNum {
		_, err := scan(c.src)
		var bn *BadNumberError
		if !errors.As(err, &bn) {
			t.Errorf("scanning %q: want BadNumberError, got %v", c.src, err)
			continue
		}
		if bn.Off != c.off {
			t.Errorf("scanning %q: error at %d, want %d", c.src, bn.Off, c.off)
		}
	}
}
