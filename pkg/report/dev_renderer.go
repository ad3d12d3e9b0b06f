package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

// DevRenderer implements Service for local development. It renders a plain
// one-page PDF listing the report path and parameters instead of calling
// the real rendering service.
type DevRenderer struct {
	mu    sync.Mutex
	execs map[string]loadRequest
}

// NewDevRenderer creates a development renderer.
func NewDevRenderer() *DevRenderer {
	return &DevRenderer{execs: make(map[string]loadRequest)}
}

// Load records the report path and parameters under a fresh execution id.
func (d *DevRenderer) Load(ctx context.Context, path string, params map[string]string) (Execution, error) {
	if path == "" {
		return Execution{}, fmt.Errorf("%w: report path is required", ErrRenderFailed)
	}

	id := uuid.NewString()
	d.mu.Lock()
	d.execs[id] = loadRequest{Path: path, Parameters: params}
	d.mu.Unlock()

	return Execution{ID: id}, nil
}

// Render produces the placeholder PDF for a loaded execution.
func (d *DevRenderer) Render(ctx context.Context, exec Execution, format string) ([]byte, error) {
	if format != FormatPDF {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrRenderFailed, format)
	}

	d.mu.Lock()
	req, ok := d.execs[exec.ID]
	d.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown execution %q", ErrRenderFailed, exec.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary (development render)", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Report: %s", req.Path))
	pdf.Ln(7)

	keys := make([]string, 0, len(req.Parameters))
	for k := range req.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %s", k, req.Parameters[k]))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Rendered by the development renderer. Not a customer document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
