package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/pnc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, src string
		consts      [][2]string
		wrap, echo  bool
		prec        int
	)
	addconst := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "#name=value", not %q`, s)
		}
		nm := strings.TrimSpace(d[0])
		if !strings.HasPrefix(nm, "#") || len(nm) < 2 {
			return fmt.Errorf("constant name %q must begin with #", nm)
		}
		consts = append(consts, [2]string{nm, strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&src, "s", "", "evaluate one program and exit")
	flag.StringVar(&src, "string", "", "same as -s")
	flag.StringVar(&inname, "in", "", "input file, one program per line (default stdin if no programs given)")
	flag.Func("const", "#name=value constant definition (any number of times)", addconst)
	flag.IntVar(&prec, "p", pnc.DefaultPrec, "precision of real calculations in bits")
	flag.BoolVar(&wrap, "wrap", true, "read a line that is not one list as if it were parenthesized")
	flag.BoolVar(&echo, "echo", false, "print compiled expressions")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if err := checkSources(src, inname, flag.NArg()); err != nil {
		log.Fatal(err)
	}

	env := pnc.NewEnv(pnc.Prec(uint(prec)))
	var opts []pnc.ParseOption
	if wrap {
		opts = append(opts, pnc.AutoWrap())
	}
	for _, d := range consts {
		v, err := env.EvalString(d[1], opts...)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		n, ok := v.Number()
		if !ok {
			log.Fatalf("setting %s: value is type %v, expected num", d[0], v.Type())
		}
		env = env.With(pnc.Const(d[0], n))
	}

	r := runner{env: env, opts: opts, echo: echo, out: os.Stdout}
	if src != "" {
		if !r.run(src) {
			os.Exit(1)
		}
		return
	}
	if flag.NArg() > 0 {
		ok := true
		for _, arg := range flag.Args() {
			ok = r.run(arg) && ok
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	in, prompt, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(os.Stderr, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r.run(line)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// runner evaluates programs and prints their results.
type runner struct {
	env  *pnc.Env
	opts []pnc.ParseOption
	echo bool
	out  io.Writer
}

// run evaluates one program and prints "= value" or "= fault: message". It
// reports whether the evaluation succeeded.
func (r *runner) run(src string) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(r.out, "= %s: %v\n", faultNames[pnc.InternalFault], p)
			ok = false
		}
	}()
	n, err := pnc.Parse(src, r.opts...)
	if err != nil {
		return r.fault(err)
	}
	e, err := r.env.Compile(n)
	if err != nil {
		return r.fault(err)
	}
	if r.echo {
		fmt.Fprintf(r.out, "%v : ", e)
	}
	v, err := r.env.Eval(e)
	if err != nil {
		return r.fault(err)
	}
	fmt.Fprintf(r.out, "= %v\n", v)
	return true
}

func (r *runner) fault(err error) bool {
	fmt.Fprintf(r.out, "= %s: %v\n", faultNames[pnc.KindOf(err)], err)
	return false
}

// faultNames are the names under which faults are reported.
var faultNames = map[pnc.FaultKind]string{
	pnc.NoFault:           "error",
	pnc.ParseFault:        "parse error",
	pnc.NameFault:         "name error",
	pnc.ValueFault:        "value error",
	pnc.DivideByZeroFault: "divide by zero",
	pnc.InternalFault:     "internal error",
}

// checkSources rejects combinations of program sources. Programs come from
// exactly one of -s, the command line, or the input file.
func checkSources(src, inname string, nargs int) error {
	switch {
	case src != "" && inname != "":
		return errors.New("-s and -in cannot be used together")
	case src != "" && nargs > 0:
		return fmt.Errorf("-s cannot be used with program arguments (got %d)", nargs)
	case inname != "" && nargs > 0:
		return fmt.Errorf("-in cannot be used with program arguments (got %d)", nargs)
	}
	return nil
}

// infile opens the input and reports whether it is interactive.
func infile(inname string) (io.ReadCloser, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return io.NopCloser(os.Stdin), isatty.IsTerminal(os.Stdin.Fd()), nil
}
