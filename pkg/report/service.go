package report

import (
	"context"
	"errors"
	"fmt"
)

// FormatPDF is the only render format the itinerary pipeline requests.
const FormatPDF = "PDF"

// Execution identifies a loaded report instance on the rendering service.
type Execution struct {
	ID string
}

// Service is the report-rendering collaborator. Load prepares an execution
// for the report at path with the given parameters; Render exports it to
// the requested binary format.
type Service interface {
	Load(ctx context.Context, path string, params map[string]string) (Execution, error)
	Render(ctx context.Context, exec Execution, format string) ([]byte, error)
}

var (
	// ErrRenderFailed indicates the rendering service rejected or failed a
	// load/render call.
	ErrRenderFailed = errors.New("report.errors.render_failed")

	// ErrEmptyOutput indicates the service rendered zero bytes. Treated the
	// same as a failed render: nothing is sent.
	ErrEmptyOutput = errors.New("report.errors.empty_output")
)

// RenderPDF loads the report at path and renders it to PDF, guaranteeing
// non-empty output.
func RenderPDF(ctx context.Context, svc Service, path string, params map[string]string) ([]byte, error) {
	exec, err := svc.Load(ctx, path, params)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	pdf, err := svc.Render(ctx, exec, FormatPDF)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: report %s", ErrEmptyOutput, path)
	}

	return pdf, nil
}
