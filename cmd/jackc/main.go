// Command jackc compiles one class file written in the source language
// into a corresponding VM listing, or every such file in a directory
// (non-recursive).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.jackvm.dev/pkg/jack"
)

const sourceExt = ".jack"
const outputExt = ".vm"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jackc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jackc <file.jack|directory>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Compiles one class file, or every .jack file in a directory")
		fmt.Fprintln(stderr, "(non-recursive), to a sibling .vm file.")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	files, err := collectFiles(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if len(files) == 0 {
		fmt.Fprintf(stderr, "no %s files found at %q\n", sourceExt, fs.Arg(0))
		return 2
	}

	if err := compileAll(files, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

// collectFiles resolves path to the list of source files to compile: path
// itself if it is a .jack file, or every direct (non-recursive) .jack
// child if path is a directory.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot stat %q", path)
	}

	if !info.IsDir() {
		if filepath.Ext(path) != sourceExt {
			return nil, errors.Errorf("%q is not a %s file", path, sourceExt)
		}

		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read directory %q", path)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if filepath.Ext(e.Name()) == sourceExt {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}

	return files, nil
}

// compileAll compiles every file concurrently using an errgroup, and
// prints one "in -> out" line per successfully compiled file.
func compileAll(files []string, stdout io.Writer) error {
	var g errgroup.Group
	var mu sync.Mutex

	for _, f := range files {
		f := f
		g.Go(func() error {
			out, err := compileFile(f)
			if err != nil {
				return errors.Wrapf(err, "compiling %s", f)
			}

			mu.Lock()
			fmt.Fprintf(stdout, "%s -> %s\n", f, out)
			mu.Unlock()

			return nil
		})
	}

	return g.Wait()
}

func outputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return inputPath[:len(inputPath)-len(ext)] + outputExt
}

// compileFile opens path for reading and its sibling .vm file for writing,
// and runs the compiler between them. A fresh Lexer/Resolver/VMWriter is
// used per call (via jack.CompileReader), so concurrent calls from
// compileAll share no state.
func compileFile(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening %q", path)
	}
	defer in.Close()

	out := outputPath(path)

	w, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", errors.Wrapf(err, "opening %q for writing", out)
	}
	defer w.Close()

	if err := jack.CompileReader(in, w); err != nil {
		return "", err
	}

	return out, nil
}
