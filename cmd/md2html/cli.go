package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs    = errors.New("usage: md2html [flags] <input> <output>")
	ErrMissingInput   = errors.New("missing input file")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// settings holds the effective options after merging config and flags.
// Flags override config values.
type settings struct {
	commonmark  bool
	frontMatter bool
	standalone  bool
	title       string
	workers     int
	timeout     time.Duration
	quiet       bool
	verbose     bool
}

// run resolves settings, validates arguments, and dispatches to single
// or batch conversion.
func run(flags *cliFlags, args []string) error {
	cfg, err := resolveConfig(flags.config)
	if err != nil {
		return err
	}

	opts, err := mergeSettings(cfg, flags)
	if err != nil {
		return err
	}

	if len(args) != 2 {
		return ErrInvalidArgs
	}

	inputPath := resolveInPath(args[0], cfg.Input.DefaultDir)
	outputPath := resolveInPath(args[1], cfg.Output.DefaultDir)

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	info, statErr := os.Stat(inputPath)
	if statErr == nil && info.IsDir() {
		return runBatch(ctx, inputPath, outputPath, opts)
	}
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
	}

	svc := newService(opts)
	return convertFile(ctx, svc, inputPath, outputPath, opts)
}

// resolveConfig loads the named config, or defaults when none is given.
func resolveConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// mergeSettings layers flags over config defaults.
func mergeSettings(cfg *config.Config, flags *cliFlags) (settings, error) {
	opts := settings{
		commonmark:  cfg.Convert.CommonMark || flags.commonmark,
		frontMatter: cfg.Document.FrontMatter || flags.frontMatter,
		standalone:  cfg.Document.Standalone || flags.standalone,
		title:       cfg.Document.Title,
		workers:     cfg.Convert.Workers,
		quiet:       flags.quiet,
		verbose:     flags.verbose,
	}
	if flags.title != "" {
		opts.title = flags.title
	}
	if flags.workers > 0 {
		opts.workers = flags.workers
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return settings{}, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts.timeout = d
	}
	return opts, nil
}

// resolveInPath joins a relative path onto a configured default
// directory. Absolute paths and empty defaults pass through.
func resolveInPath(path, defaultDir string) string {
	if defaultDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(defaultDir, path)
}

// newService builds a Service for the effective settings.
func newService(opts settings) *md2html.Service {
	if opts.commonmark {
		return md2html.New(md2html.WithCommonMark())
	}
	return md2html.New()
}

// convertFile reads one input file, converts it, and writes the result.
func convertFile(ctx context.Context, svc *md2html.Service, inputPath, outputPath string, opts settings) error {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if opts.verbose {
		fmt.Fprintf(os.Stderr, "Converting %s\n", inputPath)
	}

	html, err := svc.Convert(ctx, md2html.Input{
		Markdown:    string(data),
		FrontMatter: opts.frontMatter,
		Standalone:  opts.standalone,
		Title:       opts.title,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !opts.quiet {
		fmt.Printf("Created %s\n", outputPath)
	}
	return nil
}
