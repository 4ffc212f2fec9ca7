/*
Command segtree builds a segment tree from a list of integers and
demonstrates its operations.

Usage:

	echo "3 1 4 1 5 9 2 6" | segtree
	segtree --index 3 --value -7 -- 3 1 4 1 5 9 2 6

segtree prints the node array, the elements, overwrites one element, and
prints the elements, their prefix sums and the node array again. Numbers are
taken from the arguments or, if there are none, from the first line of stdin.
Negative numbers on the command line have to follow "--".
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/segtree"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	trace string // trace level
	index int    // element to overwrite
	value int64  // new value of element
	dot   bool   // output final tree in Graphviz format
	color string // auto, always or never
}

func main() {
	if err := getCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getCommand() *cobra.Command {
	opts := options{
		trace: "error",
		index: 2,
		value: 42,
		color: "auto",
	}
	c := &cobra.Command{
		Use:          "segtree [numbers...]",
		Short:        "demonstrate a segment tree with lazy propagation",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := setupTracing(opts.trace); err != nil {
				return err
			}
			input := strings.Join(args, " ")
			if len(args) == 0 {
				line, err := readLine(c.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				input = line
			}
			elements, err := parseElements(input)
			if err != nil {
				return err
			}
			return run(c.OutOrStdout(), elements, opts)
		},
	}
	c.Flags().StringVar(&opts.trace, "trace", opts.trace, "trace level: error, info or debug")
	c.Flags().IntVar(&opts.index, "index", opts.index, "index of the element to overwrite")
	c.Flags().Int64Var(&opts.value, "value", opts.value, "new value of the element")
	c.Flags().BoolVar(&opts.dot, "dot", opts.dot, "print the final tree in Graphviz DOT format")
	c.Flags().StringVar(&opts.color, "color", opts.color, "colored output: auto, always or never")
	return c
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(level) {
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("%w: unknown trace level %q", segtree.ErrIllegalArguments, level)
	}
	return nil
}

func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}

// parseElements reads whitespace separated decimal integers.
func parseElements(input string) ([]int64, error) {
	fields := strings.Fields(input)
	elements := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", segtree.ErrIllegalArguments, i, err)
		}
		elements[i] = v
	}
	return elements, nil
}

func run(w io.Writer, elements []int64, opts options) error {
	header := color.New(color.FgCyan, color.Bold)
	switch opts.color {
	case "always":
		header.EnableColor()
	case "never":
		header.DisableColor()
	case "auto":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			header.EnableColor()
		} else {
			header.DisableColor()
		}
	default:
		return fmt.Errorf("%w: unknown color mode %q", segtree.ErrIllegalArguments, opts.color)
	}
	section := func(name string, value interface{}) {
		header.Fprintf(w, "%s", name)
		fmt.Fprintf(w, " = %v\n", value)
	}
	tree := segtree.New(elements...)
	section("nodes", tree)
	section("elements", tree.Values())
	if opts.index < 0 || opts.index >= tree.Len() {
		return fmt.Errorf("%w: cannot overwrite element %d of %d", segtree.ErrIllegalArguments,
			opts.index, tree.Len())
	}
	section(fmt.Sprintf("elements[%d]", opts.index), opts.value)
	tree.Set(opts.index, opts.value)
	section("elements", tree.Values())
	section("prefix sums", tree.PrefixSums())
	if opts.dot {
		segtree.Tree2Dot(tree, w)
	} else {
		section("nodes", tree)
	}
	return tree.Check()
}
