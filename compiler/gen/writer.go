package gen

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/butterflyc/diagram"
)

// Writer runs one or more backends against a diagram, writing each
// backend's output file under the target directory.
type Writer struct {
	d        *diagram.UseCaseDiagram
	cfg      *Config
	backends []Backend

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a writer for the given diagram, config, and backends.
func NewWriter(d *diagram.UseCaseDiagram, cfg *Config, backends ...Backend) (*Writer, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if cfg.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	if len(backends) == 0 {
		return nil, NewConfigError("Backends", nil, "at least one backend is required")
	}
	return &Writer{d: d, cfg: cfg, backends: backends}, nil
}

// Metrics returns the metrics of the last generation run.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// GenerateAll runs every backend, in parallel up to the configured worker
// limit, and writes one file per backend under the target directory.
func (w *Writer) GenerateAll(ctx context.Context) error {
	if err := os.MkdirAll(w.cfg.Target, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	workers := w.cfg.Workers
	if workers == 0 {
		workers = len(w.backends)
	}
	eg.SetLimit(workers)

	for _, b := range w.backends {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generateFile(b)
			}
		})
	}

	return eg.Wait()
}

// generateFile runs a single backend against its output file.
func (w *Writer) generateFile(b Backend) error {
	name := b.Filename(w.cfg)
	path := filepath.Join(w.cfg.Target, name)

	out, err := os.Create(path)
	if err != nil {
		return NewGenerationError(b.Name(), name, "create output file", err)
	}

	// No buffering: the backend streams straight to the file.
	cw := &countingWriter{w: out}
	genErr := b.GeneratePortal(cw, w.d, w.cfg)
	closeErr := out.Close()
	if genErr != nil {
		return NewGenerationError(b.Name(), name, "generate portal", genErr)
	}
	if closeErr != nil {
		return NewGenerationError(b.Name(), name, "close output file", closeErr)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += cw.n
	w.mu.Unlock()
	return nil
}

// countingWriter counts bytes written through it for the writer metrics.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
