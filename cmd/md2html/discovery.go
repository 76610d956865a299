package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FileToConvert represents a single file to process in batch mode.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles walks inputDir and collects every markdown file,
// mirroring the directory tree under outputDir for the output paths.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputDir),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}
