package mainfuncs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banachtech/frontier/render"
)

const (
	FrontierFile   = "frontier.png"
	AllocationFile = "allocation.png"
)

// Write renders the frontier scatter, and the allocation chart when there
// is a non-degenerate sample, into dir. It returns the written paths.
func Write(res *Result, display render.DisplayConfig, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := render.Scatter(&buf, render.Points(res.Samples), display); err != nil {
		return nil, fmt.Errorf("render frontier: %w", err)
	}
	frontier := filepath.Join(dir, FrontierFile)
	if err := os.WriteFile(frontier, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	paths := []string{frontier}

	if res.Summary.Count == res.Summary.Degenerate {
		return paths, nil
	}
	b, err := render.Allocation(res.Summary, res.Symbols)
	if err != nil {
		return paths, err
	}
	alloc := filepath.Join(dir, AllocationFile)
	if err := os.WriteFile(alloc, b, 0o644); err != nil {
		return paths, err
	}
	return append(paths, alloc), nil
}
