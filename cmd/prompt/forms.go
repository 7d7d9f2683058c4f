package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	prompt "github.com/grindlemire/go-prompt"
	"github.com/grindlemire/go-prompt/internal/debug"
)

// commonFlags are the flags every form command accepts.
type commonFlags struct {
	message string
	debug   string
}

func newFlagSet(name string, c *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.message, "message", "", "question to ask")
	fs.StringVar(&c.message, "m", "", "question to ask (shorthand)")
	fs.StringVar(&c.debug, "debug", "", "append debug logs to this file")
	return fs
}

// newPrompter opens the terminal and starts debug logging if requested.
func newPrompter(c commonFlags) (*prompt.Prompter, func(), error) {
	if c.debug != "" {
		if err := debug.Init(c.debug); err != nil {
			return nil, nil, err
		}
	}

	in, out, closeTTY, err := openTerminal()
	if err != nil {
		return nil, nil, err
	}

	p, err := prompt.New(prompt.WithStreams(in, out))
	if err != nil {
		closeTTY()
		return nil, nil, err
	}
	return p, func() {
		p.Close()
		closeTTY()
	}, nil
}

// openTerminal returns streams on the controlling terminal. Stdin is used when it
// is a terminal; otherwise it carries items and the terminal device is opened.
// The form is drawn on stderr so stdout only carries answers.
func openTerminal() (in, out *os.File, closeFn func(), err error) {
	out = os.Stderr
	if !term.IsTerminal(int(out.Fd())) {
		out = nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) && out != nil {
		return os.Stdin, out, func() {}, nil
	}

	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open terminal: %w", err)
	}
	if out == nil {
		out = tty
	}
	return tty, out, func() { tty.Close() }, nil
}

// readItems returns args, or the non-empty lines of stdin when there are none.
func readItems(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no items given")
	}

	var items []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			items = append(items, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("no items given")
	}
	return items, nil
}

func runMultiSelect(args []string) error {
	var c commonFlags
	fs := newFlagSet("multiselect", &c)
	minimum := fs.Int("min", 0, "fewest items that may be submitted")
	maximum := fs.Int("max", 0, "most items that may be selected (0 for no limit)")
	pageSize := fs.Int("page-size", 0, "items per page (0 to fit the terminal)")
	fuzzy := fs.Bool("fuzzy", false, "filter with fuzzy matching")
	loop := fs.Bool("loop", false, "wrap around at the ends of the list")
	var defaults stringList
	fs.Var(&defaults, "default", "item selected initially (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := readItems(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}

	opts := prompt.MultiSelectOptions[string]{
		Message:          c.message,
		Items:            items,
		DefaultValues:    defaults,
		PageSize:         *pageSize,
		Minimum:          *minimum,
		Maximum:          *maximum,
		LoopingSelection: *loop,
	}
	if *fuzzy {
		opts.Filter = prompt.FuzzyFilter[string](nil)
	}

	p, done, err := newPrompter(c)
	if err != nil {
		return err
	}
	defer done()

	result, err := prompt.MultiSelect(context.Background(), p, opts)
	if err != nil {
		return err
	}
	for _, item := range result {
		fmt.Println(item)
	}
	return nil
}

func runSelect(args []string) error {
	var c commonFlags
	fs := newFlagSet("select", &c)
	pageSize := fs.Int("page-size", 0, "items per page (0 to fit the terminal)")
	fuzzy := fs.Bool("fuzzy", false, "filter with fuzzy matching")
	loop := fs.Bool("loop", false, "wrap around at the ends of the list")
	def := fs.String("default", "", "item highlighted initially")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := readItems(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}

	opts := prompt.SelectOptions[string]{
		Message:          c.message,
		Items:            items,
		PageSize:         *pageSize,
		LoopingSelection: *loop,
	}
	if *def != "" {
		opts.DefaultValue = def
	}
	if *fuzzy {
		opts.Filter = prompt.FuzzyFilter[string](nil)
	}

	p, done, err := newPrompter(c)
	if err != nil {
		return err
	}
	defer done()

	result, err := prompt.Select(context.Background(), p, opts)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func runConfirm(args []string) error {
	var c commonFlags
	fs := newFlagSet("confirm", &c)
	def := fs.String("default", "", "answer when nothing is typed: yes or no")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := prompt.ConfirmOptions{Message: c.message}
	switch strings.ToLower(*def) {
	case "":
	case "y", "yes", "true":
		v := true
		opts.DefaultValue = &v
	case "n", "no", "false":
		v := false
		opts.DefaultValue = &v
	default:
		return fmt.Errorf("invalid -default %q: want yes or no", *def)
	}

	p, done, err := newPrompter(c)
	if err != nil {
		return err
	}
	defer done()

	result, err := prompt.Confirm(context.Background(), p, opts)
	if err != nil {
		return err
	}
	if result {
		fmt.Println("yes")
	} else {
		fmt.Println("no")
	}
	return nil
}

func runInput(args []string) error {
	var c commonFlags
	fs := newFlagSet("input", &c)
	def := fs.String("default", "", "value submitted when nothing is typed")
	placeholder := fs.String("placeholder", "", "text shown while nothing is typed")
	required := fs.Bool("required", false, "reject empty answers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := prompt.InputOptions{
		Message:      c.message,
		DefaultValue: *def,
		Placeholder:  *placeholder,
	}
	if *required {
		opts.Validators = append(opts.Validators, prompt.Required)
	}

	p, done, err := newPrompter(c)
	if err != nil {
		return err
	}
	defer done()

	result, err := prompt.Input(context.Background(), p, opts)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
