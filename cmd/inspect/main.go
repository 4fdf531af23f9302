package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/packed/errors"
	"github.com/wippyai/packed/layout"
)

func main() {
	var (
		widthsFlag  = flag.String("widths", "", "Field widths in push order, comma-separated (e.g. 3,4,5)")
		valueFlag   = flag.String("value", "", "Register word to decode (decimal, 0x.., 0b..)")
		descFlag    = flag.String("desc", "", "Width descriptor instead of -widths (decimal or 0x..)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Verbose layout compilation logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layout.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*widthsFlag, *valueFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *widthsFlag == "" && *descFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -widths 3,4,5 -value 0x1234")
		fmt.Fprintln(os.Stderr, "       inspect -desc 0x050403 -value 0x1234")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*widthsFlag, *descFlag, *valueFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(widthsStr, descStr, valueStr string) error {
	l, err := compileFlags(widthsStr, descStr)
	if err != nil {
		return err
	}

	var word uint64
	if valueStr != "" {
		word, err = parseWord(valueStr)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Layout: %s (%d fields, %d of 64 bits, descriptor %#x)\n\n",
		l, l.FieldCount(), l.TotalBits(), l.Descriptor())
	fmt.Println(renderBreakdown(l, word))
	return nil
}

func compileFlags(widthsStr, descStr string) (*layout.Layout, error) {
	if widthsStr != "" {
		widths, err := parseWidths(widthsStr)
		if err != nil {
			return nil, err
		}
		return layout.Compile(widths...)
	}
	desc, err := parseWord(descStr)
	if err != nil {
		return nil, err
	}
	return layout.FromDescriptor(desc)
}

func parseWidths(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	widths := make([]uint, 0, len(parts))
	for _, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseInspect, errors.KindInvalidInput, err,
				fmt.Sprintf("bad width %q", p))
		}
		widths = append(widths, uint(w))
	}
	return widths, nil
}

func parseWord(s string) (uint64, error) {
	// ParseUint with base 0 accepts decimal, 0x and 0b forms.
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseInspect, errors.KindInvalidInput, err,
			fmt.Sprintf("bad register word %q", s))
	}
	return v, nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func renderBreakdown(l *layout.Layout, word uint64) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-7s %-6s %-6s %-18s %-20s %s",
		"field", "width", "shift", "mask", "value", "binary")))
	b.WriteByte('\n')

	for i, f := range l.Fields() {
		v := word >> f.Shift & f.Mask
		b.WriteString(fmt.Sprintf("%-7d %-6d %-6d %-18s %-20s %s\n",
			i, f.Width, f.Shift,
			dimStyle.Render(fmt.Sprintf("%#x", f.Mask<<f.Shift)),
			valueStyle.Render(strconv.FormatUint(v, 10)),
			dimStyle.Render(fmt.Sprintf("%0*b", int(f.Width), v))))
	}

	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(fmt.Sprintf("word: %d (%#x)", word, word)))
	return b.String()
}
