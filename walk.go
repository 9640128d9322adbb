package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/ktsurface/parsing"
	"github.com/NickyBoy89/ktsurface/render"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// The width of the line that separates the output of two files
const separatorWidth = 100

// Walker prints the declarations of every matching file under a root path
type Walker struct {
	Parser parsing.Parser
	// The extensions of the files to parse, such as `.kt`
	Extensions []string
	Out        io.Writer
}

// Walk processes the files under root one at a time, in lexical order. The
// first file that cannot be read or parsed stops the walk
func (w *Walker) Walk(ctx context.Context, root string) error {
	extensions := make([]string, len(w.Extensions))
	for ind, ext := range w.Extensions {
		extensions[ind] = normalizeExtension(ext)
	}

	var files int
	var size uint64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if !slices.Contains(extensions, strings.ToLower(filepath.Ext(path))) {
			log.WithField("file", path).Debug("Skipping file")
			return nil
		}

		read, err := w.PrintFile(ctx, path)
		if err != nil {
			return err
		}
		files++
		size += uint64(read)
		return nil
	})

	log.WithFields(log.Fields{
		"files": files,
		"read":  humanize.Bytes(size),
	}).Debug("Finished")

	return err
}

// PrintFile prints the declarations of a single file, and returns the number
// of bytes that were read from it
func (w *Walker) PrintFile(ctx context.Context, path string) (int, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return 0, err
	}

	log.WithField("file", absPath).Debug("Started parsing file")

	source, err := os.ReadFile(absPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", absPath, err)
	}

	file, err := w.Parser.Parse(ctx, source, absPath)
	if err != nil {
		return len(source), err
	}

	if render.CountPublic(file) == 0 {
		fmt.Fprintf(w.Out, "No declarations found in %s\n", absPath)
		return len(source), nil
	}

	fmt.Fprintln(w.Out, strings.Repeat("=", separatorWidth))
	fmt.Fprintf(w.Out, "Declarations for %s\n\n", absPath)
	fmt.Fprint(w.Out, render.File(file))

	return len(source), nil
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
