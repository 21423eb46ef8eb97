// Command calc evaluates arithmetic expressions.
//
// Expressions come from the command line, from a file or stdin with one
// expression per line, or from an interactive prompt when run on a
// terminal with no arguments.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/athagen/calc"
)

const historyFile = ".calc_history"

func main() {
	log.SetFlags(0)
	var cfg config
	flag.StringVar(&cfg.inname, "in", "", `input file with one expression per line, "-" for stdin`)
	flag.StringVar(&cfg.logname, "log", "", "append evaluated {expression, result} JSON lines to this file")
	flag.StringVar(&cfg.verb, "fmt", "%g", "formatting verb for float results")
	flag.BoolVar(&cfg.opts.ShowTokens, "tokens", false, "print the scanned token sequence")
	flag.BoolVar(&cfg.opts.ShowAST, "ast", false, "print the parsed tree")
	flag.BoolVar(&cfg.interactive, "i", false, "force interactive mode")
	flag.Parse()
	os.Exit(run(&cfg, flag.Args()))
}

type config struct {
	inname      string
	logname     string
	verb        string
	opts        calc.Options
	interactive bool
	logenc      *json.Encoder
}

// record is one line of the optional calculation log.
type record struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

func run(cfg *config, args []string) int {
	if cfg.logname != "" {
		f, err := os.OpenFile(cfg.logname, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Print(err)
			return 1
		}
		defer f.Close()
		cfg.logenc = json.NewEncoder(f)
	}

	switch {
	case len(args) > 0:
		code := 0
		for _, src := range args {
			if !cfg.eval(src) {
				code = 1
			}
		}
		return code
	case cfg.inname != "" && cfg.inname != "-":
		f, err := os.Open(cfg.inname)
		if err != nil {
			log.Print(err)
			return 1
		}
		defer f.Close()
		return evalLines(cfg, f)
	case cfg.interactive, cfg.inname == "" && liner.TerminalSupported():
		return repl(cfg)
	default:
		return evalLines(cfg, os.Stdin)
	}
}

// eval calculates one expression and prints the result, or the diagnostic
// to stderr. It reports whether evaluation succeeded.
func (cfg *config) eval(src string) bool {
	v, err := calc.Calculate(src, cfg.opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, calc.Annotate(src, err))
		return false
	}
	if v.IsInt() {
		fmt.Println(v)
	} else {
		fmt.Printf(cfg.verb+"\n", v.Float64())
	}
	if cfg.logenc != nil {
		if err := cfg.logenc.Encode(record{Expression: src, Result: v.String()}); err != nil {
			log.Print(err)
		}
	}
	return true
}

func evalLines(cfg *config, r io.Reader) int {
	sc := bufio.NewScanner(r)
	code := 0
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		if !cfg.eval(src) {
			code = 1
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		return 1
	}
	return code
}

func repl(cfg *config) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		src, err := ln.Prompt("> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return 0
		default:
			log.Print(err)
			return 1
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ln.AppendHistory(src)
		cfg.eval(src)
	}
}
