// File: engine.go
// Title: monk Front-End Engine
// Description: High-level interface to the monk front end. Wires the lexer
//              and parser together with logging, input limits, coded errors,
//              per-call correlation IDs and concurrent batch parsing.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial engine implementation
// - 2026-10-15 v0.1.1: TokenizeUnit and ParsePaths with a custom unit reader

package lang

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	monkconfig "github.com/msto63/monk/foundation/core/config"
	monkerror "github.com/msto63/monk/foundation/core/error"
	monklog "github.com/msto63/monk/foundation/core/log"
	monkast "github.com/msto63/monk/foundation/lang/ast"
	monklexer "github.com/msto63/monk/foundation/lang/lexer"
	monkparser "github.com/msto63/monk/foundation/lang/parser"
	monktoken "github.com/msto63/monk/foundation/lang/token"
	"github.com/msto63/monk/foundation/utils/filex"
)

const (
	// DefaultMaxInputLength is the input size limit in bytes (1 MiB)
	DefaultMaxInputLength = 1 << 20

	// SourcePattern matches monk source files during directory expansion
	SourcePattern = "*.monk"
)

// Options configures the engine. Zero values select the defaults.
type Options struct {
	Logger         *monklog.Logger
	MaxInputLength int  // Longest accepted source text in bytes
	MaxDepth       int  // Nesting limit handed to the parser
	Recover        bool // Collect one error per failed statement instead of stopping
	Concurrency    int  // Parallel units in ParseBatch (default: number of CPUs)
}

// Unit is one piece of source text to parse
type Unit struct {
	Name string
	Path string
	Text string
}

// Label names the unit in messages: its path, its name or "<input>"
func (u Unit) Label() string {
	switch {
	case u.Path != "":
		return u.Path
	case u.Name != "":
		return u.Name
	default:
		return "<input>"
	}
}

// Result is the outcome of parsing one unit
type Result struct {
	Name          string
	Path          string
	Program       *monkast.Program // nil when the unit could not be parsed at all
	Errors        []error          // Coded errors, one per failed statement in recover mode
	CorrelationID string
	Duration      time.Duration
}

// OK reports whether the unit parsed without errors
func (r *Result) OK() bool {
	return r.Program != nil && len(r.Errors) == 0
}

// Err joins all errors of the result, or returns nil
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// Engine is the monk front end
type Engine struct {
	logger  *monklog.Logger
	options Options
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.MaxInputLength < 0 || opts.MaxDepth < 0 || opts.Concurrency < 0 {
		return nil, monkerror.New("engine limits must not be negative").
			WithCode(monkerror.CodeInvalidConfig).
			WithOperation("lang.New").
			WithDetails(map[string]interface{}{
				"maxInputLength": opts.MaxInputLength,
				"maxDepth":       opts.MaxDepth,
				"concurrency":    opts.Concurrency,
			})
	}

	if opts.Logger == nil {
		opts.Logger = monklog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = monkparser.DefaultMaxDepth
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = runtime.NumCPU()
	}

	logger := opts.Logger.WithField("component", "monk-engine")
	logger.Debug("Front-end engine initialized", monklog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"maxDepth":       opts.MaxDepth,
		"recover":        opts.Recover,
		"concurrency":    opts.Concurrency,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

// Tokenize converts text into tokens
func (e *Engine) Tokenize(text string) ([]monktoken.Token, error) {
	return e.TokenizeUnit(Unit{Text: text})
}

// TokenizeUnit is Tokenize for a named unit; errors carry the unit's label
func (e *Engine) TokenizeUnit(unit Unit) ([]monktoken.Token, error) {
	cid := uuid.NewString()
	logger := e.logger.WithCorrelationID(cid).WithField("unit", unit.Label())
	tokens, err := e.tokenize(unit, cid, logger)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// Parse tokenizes and parses one unit. In recover mode syntax errors are
// reported in Result.Errors and the error return is reserved for failures
// that leave no program (input too long, lexical errors).
func (e *Engine) Parse(unit Unit) (*Result, error) {
	result, err := e.parse(unit)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ParseFile reads and parses a file. The unit name is the base name
// without extension.
func (e *Engine) ParseFile(path string) (*Result, error) {
	unit, err := ReadUnit(path)
	if err != nil {
		e.logger.WarnWithErr("Cannot read source file", err, monklog.Fields{"path": path})
		return nil, err
	}
	return e.Parse(unit)
}

// ReadUnit loads a source file into a Unit
func ReadUnit(path string) (Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := monkerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = monkerror.CodeNotFound
		}
		return Unit{}, monkerror.Wrap(err, "cannot read "+path).
			WithCode(code).
			WithOperation("lang.ReadUnit").
			WithDetail("path", path)
	}

	base := filepath.Base(path)
	return Unit{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
		Text: string(content),
	}, nil
}

// ExpandPaths replaces directories in paths with the monk sources below them
func ExpandPaths(paths []string) ([]string, error) {
	return filex.Expand(paths, SourcePattern)
}

// ParseBatch parses units concurrently. Results are in input order; a unit
// that fails carries its error in Result.Errors. The returned error is set
// only when ctx ends before every unit was parsed; units that never ran are
// nil in the slice.
func (e *Engine) ParseBatch(ctx context.Context, units []Unit) ([]*Result, error) {
	return e.batch(ctx, len(units), func(i int) *Result {
		return e.collect(units[i])
	})
}

// UnitReader loads the source named by path
type UnitReader func(path string) (Unit, error)

// ParseFiles reads and parses files concurrently, like ParseBatch
func (e *Engine) ParseFiles(ctx context.Context, paths []string) ([]*Result, error) {
	return e.ParsePaths(ctx, paths, ReadUnit)
}

// ParsePaths is ParseFiles with a custom reader, e.g. one that maps "-" to
// standard input. A read failure becomes the error of that path's result.
func (e *Engine) ParsePaths(ctx context.Context, paths []string, read UnitReader) ([]*Result, error) {
	return e.batch(ctx, len(paths), func(i int) *Result {
		unit, err := read(paths[i])
		if err != nil {
			e.logger.WarnWithErr("Cannot read source file", err, monklog.Fields{"path": paths[i]})
			return &Result{Name: unit.Name, Path: paths[i], Errors: []error{err}}
		}
		return e.collect(unit)
	})
}

func (e *Engine) batch(ctx context.Context, n int, job func(i int) *Result) ([]*Result, error) {
	results := make([]*Result, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Concurrency)

	for i := 0; i < n; i++ {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = job(i)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return results, monkerror.Wrap(err, "batch parsing interrupted").
			WithCode(monkerror.CodeCanceled).
			WithOperation("lang.ParseBatch").
			WithDetail("units", n)
	}

	e.logger.Debug("Batch parsed", monklog.Fields{"units": n})
	return results, nil
}

// collect parses a unit and folds a fatal error into the result
func (e *Engine) collect(unit Unit) *Result {
	result, err := e.parse(unit)
	if err != nil {
		result.Program = nil
		result.Errors = []error{err}
	}
	return result
}

// parse always returns a result carrying the correlation ID and timing
func (e *Engine) parse(unit Unit) (*Result, error) {
	cid := uuid.NewString()
	result := &Result{Name: unit.Name, Path: unit.Path, CorrelationID: cid}
	logger := e.logger.WithCorrelationID(cid).WithField("unit", unit.Label())

	timer := logger.StartTimer("parse")
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	tokens, err := e.tokenize(unit, cid, logger)
	if err != nil {
		timer.StopWithError(err)
		return result, err
	}
	timer.WithField("tokens", len(tokens))

	p := monkparser.New(tokens,
		monkparser.WithLogger(logger),
		monkparser.WithMaxDepth(e.options.MaxDepth))

	var prog *monkast.Program
	if e.options.Recover {
		var errs []error
		prog, errs = p.ParseAll()
		for _, perr := range errs {
			result.Errors = append(result.Errors, e.wrapSyntax(perr, unit, cid))
		}
	} else {
		prog, err = p.ParseProgram()
		if err != nil {
			err = e.wrapSyntax(err, unit, cid)
			timer.StopWithError(err)
			return result, err
		}
	}

	prog.Name = unit.Name
	prog.Path = unit.Path
	result.Program = prog

	timer.WithField("statements", len(prog.Stmts)).WithField("errors", len(result.Errors))
	if len(result.Errors) > 0 {
		timer.StopWithError(result.Err())
	} else {
		timer.Stop()
	}
	return result, nil
}

func (e *Engine) tokenize(unit Unit, cid string, logger *monklog.Logger) ([]monktoken.Token, error) {
	if len(unit.Text) > e.options.MaxInputLength {
		err := monkerror.Newf("%s: input of %d bytes exceeds the limit of %d", unit.Label(), len(unit.Text), e.options.MaxInputLength).
			WithCode(monkerror.CodeInvalidInput).
			WithOperation("lang.Tokenize").
			WithCorrelationID(cid).
			WithDetail("length", len(unit.Text)).
			WithDetail("limit", e.options.MaxInputLength)
		logger.WarnWithErr("Input rejected", err)
		return nil, err
	}

	tokens, err := monklexer.Tokenize(unit.Text)
	if err != nil {
		wrapped := monkerror.Wrap(err, unit.Label()).
			WithCode(monkerror.CodeLexical).
			WithOperation("lang.Tokenize").
			WithCorrelationID(cid)
		var lexErr *monklexer.Error
		if errors.As(err, &lexErr) {
			wrapped.WithDetails(map[string]interface{}{
				"line":   lexErr.Line,
				"column": lexErr.Column,
				"offset": lexErr.Offset,
			})
		}
		logger.WarnWithErr("Tokenization failed", wrapped)
		return nil, wrapped
	}

	logger.Trace("Tokenized", monklog.Fields{"tokens": len(tokens)})
	return tokens, nil
}

func (e *Engine) wrapSyntax(err error, unit Unit, cid string) error {
	code := monkerror.CodeSyntax
	wrapped := monkerror.Wrap(err, unit.Label()).
		WithOperation("lang.Parse").
		WithCorrelationID(cid)

	var perr *monkparser.Error
	if errors.As(err, &perr) {
		if perr.Kind == monkparser.Internal {
			code = monkerror.CodeInternal
		}
		wrapped.WithDetail("context", perr.Context).WithDetail("kind", perr.Kind.String())
		if perr.Found != nil {
			wrapped.WithDetail("offset", perr.Found.Offset)
		}
	}
	return wrapped.WithCode(code)
}

// FromConfig maps the [frontend] configuration table onto options. The
// logger is left unset.
func FromConfig(cfg *monkconfig.Config) Options {
	return Options{
		MaxInputLength: cfg.GetInt("frontend.max_input_length", DefaultMaxInputLength),
		MaxDepth:       cfg.GetInt("frontend.max_depth", monkparser.DefaultMaxDepth),
		Recover:        cfg.GetBool("frontend.recover", false),
		Concurrency:    cfg.GetInt("frontend.concurrency", 0),
	}
}

// ConfigDefaults returns the default configuration tree of the front end
func ConfigDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "error",
			"format": "console",
		},
		"frontend": map[string]interface{}{
			"max_input_length": DefaultMaxInputLength,
			"max_depth":        monkparser.DefaultMaxDepth,
			"recover":          false,
			"concurrency":      runtime.NumCPU(),
		},
	}
}

// ConfigRules returns the validation rules for the front end configuration
func ConfigRules() monkconfig.ValidationRules {
	return monkconfig.ValidationRules{
		"log.level":                 {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"log.format":                {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
		"frontend.max_input_length": {Type: "int", Min: monkconfig.IntBound(1)},
		"frontend.max_depth":        {Type: "int", Min: monkconfig.IntBound(1), Max: monkconfig.IntBound(100000)},
		"frontend.recover":          {Type: "bool"},
		"frontend.concurrency":      {Type: "int", Min: monkconfig.IntBound(1), Max: monkconfig.IntBound(1024)},
	}
}
