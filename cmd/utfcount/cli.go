package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kpumuk/utfrange"
	"github.com/kpumuk/utfrange/internal/config"
	"github.com/kpumuk/utfrange/internal/text"
)

const (
	exitOK        = 0
	exitMalformed = 1
	exitInternal  = 3
)

type cliOptions struct {
	stdin          bool
	check          bool
	runes          bool
	verbose        bool
	format         string
	configPath     string
	assumeFilename string
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	opts cliOptions
	cfg  *config.Config
	log  *logrus.Logger
	code int
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, code: exitOK}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		writef(stderr, "utfcount: %v\n", err)
		if a.code == exitOK {
			return exitInternal
		}
	}
	return a.code
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "utfcount [flags] [path]",
		Short: "Count and validate UTF-8 code points",
		Long: `utfcount decodes a UTF-8 file strictly and reports its code point count.

Malformed input is reported with its line and column and exits with status 1.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.count,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "", "path to a YAML config file")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	f := root.Flags()
	f.BoolVar(&a.opts.stdin, "stdin", false, "read input from stdin")
	f.BoolVar(&a.opts.check, "check", false, "only validate; report through the exit status")
	f.BoolVar(&a.opts.runes, "runes", false, "list every code point with its byte span")
	f.StringVar(&a.opts.format, "format", "", "output format: text, json, or yaml (default from config, else text)")
	f.StringVar(&a.opts.assumeFilename, "assume-filename", "", "name used in reports and diagnostics")

	root.AddCommand(a.encodeCommand())
	return root
}

func (a *app) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <U+XXXX|hex>...",
		Short: "Print the UTF-8 encoding of code points",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.encode,
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if a.opts.configPath != "" {
		loaded, err := config.LoadConfig(a.opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.opts.format != "" {
		cfg.Format = a.opts.format
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --format: %w", err)
		}
	}
	a.cfg = cfg

	log, err := newLogger(a.stderr, cfg.LogLevel, a.opts.verbose)
	if err != nil {
		return err
	}
	a.log = log
	a.log.WithFields(logrus.Fields{
		"command":         cmd.Name(),
		"format":          cfg.Format,
		"max_input_bytes": cfg.MaxInputBytes,
	}).Debug("configuration resolved")
	return nil
}

func newLogger(w io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	log.SetLevel(lvl)
	return log, nil
}

func (a *app) count(cmd *cobra.Command, args []string) error {
	switch {
	case a.opts.stdin && len(args) > 0:
		return errors.New("positional file path is not allowed with --stdin")
	case !a.opts.stdin && len(args) == 0:
		return errors.New("exactly one input file path is required (or use --stdin)")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if a.opts.check && a.opts.runes {
		a.log.Warn("--runes has no effect with --check")
	}

	src, name, err := a.readInput(path)
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"name": name, "bytes": len(src)}).Debug("input read")

	rep := buildReport(name, src, a.opts.runes && !a.opts.check)
	a.log.WithFields(logrus.Fields{
		"name":        name,
		"code_points": rep.CodePoints,
		"valid":       rep.Valid,
	}).Debug("scan complete")

	if !a.opts.check {
		if err := writeReport(a.stdout, a.cfg.Format, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if rep.Error != nil {
		writeDiagnostic(a.stderr, rep)
		a.code = exitMalformed
	}
	return nil
}

func (a *app) readInput(path string) ([]byte, string, error) {
	var r io.Reader
	name := a.opts.assumeFilename
	if a.opts.stdin {
		r = a.stdin
		if name == "" {
			name = "stdin"
		}
	} else {
		//nolint:gosec // CLI intentionally reads user-provided file paths.
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
		if name == "" {
			name = path
		}
	}

	limit := a.cfg.MaxInputBytes
	src, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(src)) > limit {
		return nil, "", fmt.Errorf("%s: input exceeds %d bytes", name, limit)
	}
	return src, name, nil
}

func (a *app) encode(_ *cobra.Command, args []string) error {
	var buf []byte
	for _, arg := range args {
		r, err := parseCodePoint(arg)
		if err != nil {
			return err
		}
		buf, err = utfrange.AppendRune(buf[:0], r)
		if err != nil {
			a.code = exitMalformed
			return err
		}
		a.log.WithFields(logrus.Fields{"code_point": fmt.Sprintf("%U", r), "width": len(buf)}).Debug("encoded")
		writef(a.stdout, "%U: % x\n", r, buf)
	}
	return nil
}

func parseCodePoint(s string) (rune, error) {
	digits := strings.ToUpper(s)
	digits = strings.TrimPrefix(digits, "U+")
	digits = strings.TrimPrefix(digits, "0X")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || digits == "" {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	if v > 0x7FFFFFFF {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(v), nil
}

type report struct {
	Name       string       `json:"name" yaml:"name"`
	Bytes      int          `json:"bytes" yaml:"bytes"`
	CodePoints int          `json:"codePoints" yaml:"codePoints"`
	Valid      bool         `json:"valid" yaml:"valid"`
	Runes      []runeEntry  `json:"runes,omitempty" yaml:"runes,omitempty"`
	Error      *reportError `json:"error,omitempty" yaml:"error,omitempty"`
}

type runeEntry struct {
	CodePoint string `json:"codePoint" yaml:"codePoint"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
}

type reportError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Offset  int    `json:"offset" yaml:"offset"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`

	// snippet is the offending line up to the malformed bytes, which are
	// shown in hex; caret is the code point column of those bytes.
	snippet string
	caret   int
}

// buildReport scans src once. Line and column in the error are 1-based; the
// column counts code points.
func buildReport(name string, src []byte, withRunes bool) report {
	rng := utfrange.New(src)
	n, err := rng.Size()
	rep := report{Name: name, Bytes: rng.ByteLen(), CodePoints: n, Valid: err == nil}

	if withRunes {
		for it := rng.Begin(); it.Next(); {
			sp := it.Span()
			rep.Runes = append(rep.Runes, runeEntry{
				CodePoint: fmt.Sprintf("%U", it.Value()),
				Start:     int(sp.Start),
				End:       int(sp.End),
			})
		}
	}

	var de *utfrange.DecodeError
	if !errors.As(err, &de) {
		return rep
	}
	rep.Error = &reportError{
		Code:    string(de.Kind),
		Message: de.Kind.Sentinel().Error(),
		Offset:  int(de.Offset()),
	}
	li := text.NewLineIndex(rng.View())
	p, err := li.OffsetToPoint(de.Offset())
	if err != nil {
		return rep
	}
	rep.Error.Line = p.Line + 1
	rep.Error.Column = p.Char + 1

	line, err := li.LineSpan(p.Line)
	if err != nil {
		return rep
	}
	if s, err := lineSnippet(rng.View(), line, de.Span); err == nil {
		rep.Error.snippet = s
		rep.Error.caret = p.Char
	}
	return rep
}

// lineSnippet renders the well-formed part of line before bad, followed by
// the bytes of bad that lie on the line in hex.
func lineSnippet(v text.ByteView, line, bad text.Span) (string, error) {
	prefix, err := text.NewSpan(line.Start, bad.Start)
	if err != nil {
		return "", err
	}
	malformed, err := text.NewSpan(bad.Start, max(bad.Start, min(bad.End, line.End)))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s<% X>", v.Slice(prefix), v.Slice(malformed)), nil
}

func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, e := range rep.Runes {
			writef(w, "%s [%d,%d)\n", e.CodePoint, e.Start, e.End)
		}
		if rep.Valid {
			writef(w, "%s: %d code points, %d bytes\n", rep.Name, rep.CodePoints, rep.Bytes)
		}
		return nil
	}
}

func writeDiagnostic(w io.Writer, rep report) {
	e := rep.Error
	writef(w, "%s:%d:%d: %s (%s)\n", rep.Name, e.Line, e.Column, e.Message, e.Code)
	if e.snippet != "" {
		writef(w, "  %s\n  %s^\n", e.snippet, strings.Repeat(" ", e.caret))
	}
}

func writef(w io.Writer, format string, args ...any) {
	//nolint:gosec // Terminal output helper; format strings are internal callsite constants.
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}
