package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all md2html flags.
type cliFlags struct {
	config      string
	quiet       bool
	verbose     bool
	version     bool
	workers     int
	timeout     string
	commonmark  bool
	frontMatter bool
	standalone  bool
	title       string
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.commonmark, "commonmark", false, "render standard Markdown via Goldmark instead of the dialect engine")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "parse a leading YAML front matter block")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap the fragment in a full HTML document")
	fs.StringVar(&f.title, "title", "", "document title for --standalone output")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the usage message.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts a lightweight markup document to an HTML fragment.")
	fmt.Fprintln(w, "When <input> is a directory, every .md/.markdown file under it")
	fmt.Fprintln(w, "is converted into <output> with the directory tree mirrored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
