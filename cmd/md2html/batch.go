package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	md2html "github.com/alnah/go-md2html"
)

// ErrNoInput is returned when a batch directory contains no markdown files.
var ErrNoInput = errors.New("no markdown files found")

// runBatch converts every markdown file under inputDir concurrently,
// writing results under outputDir with the directory tree mirrored.
func runBatch(ctx context.Context, inputDir, outputDir string, opts settings) error {
	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: %s", ErrNoInput, inputDir)
	}

	poolSize := resolvePoolSize(opts.workers)
	if opts.verbose {
		fmt.Fprintf(os.Stderr, "Converting %d files with %d workers\n", len(files), poolSize)
	}
	pool := NewServicePool(poolSize, func() *md2html.Service { return newService(opts) })

	var wg sync.WaitGroup
	errCh := make(chan error, len(files))

	for _, file := range files {
		wg.Add(1)
		go func(fc FileToConvert) {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			if err := os.MkdirAll(filepath.Dir(fc.OutputPath), 0o750); err != nil {
				errCh <- fmt.Errorf("%s: %w", fc.InputPath, err)
				return
			}
			if err := convertFile(ctx, svc, fc.InputPath, fc.OutputPath, opts); err != nil {
				errCh <- fmt.Errorf("%s: %w", fc.InputPath, err)
			}
		}(file)
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
