package calc

import (
	"io"
	"os"
)

// Options control the optional debug side channels of Calculate.
type Options struct {
	// ShowTokens prints the scanned token sequence before parsing, one
	// token per line as kind or kind(value).
	ShowTokens bool
	// ShowAST prints the parsed tree before evaluation.
	ShowAST bool
	// Debug is the destination for the optional printing. Nil means
	// os.Stdout.
	Debug io.Writer
}

func (o Options) debug() io.Writer {
	if o.Debug != nil {
		return o.Debug
	}
	return os.Stdout
}

// Calculate scans, parses, and evaluates a single expression. Any fault
// short-circuits with a typed error implementing InputError. Nothing is
// retained between calls, so concurrent callers need no synchronization.
func Calculate(expression string, opts Options) (Value, error) {
	toks, err := scan(expression)
	if err != nil {
		return Value{}, err
	}
	if opts.ShowTokens {
		w := opts.debug()
		for _, t := range toks {
			io.WriteString(w, t.String())
			io.WriteString(w, "\n")
		}
	}
	a, err := parse(toks)
	if err != nil {
		return Value{}, err
	}
	if opts.ShowAST {
		io.WriteString(opts.debug(), a.String())
	}
	return a.Eval()
}
