// Package pdfexport renders the displayed week as a printable PDF. The
// snapshot is templated into a self-contained HTML grid and printed
// through headless Chromium, so the output matches what a browser
// would produce.
package pdfexport

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/hudacentre/fundraiser-rota/pkg/core/services"
)

//go:embed week.html.tmpl
var weekTemplate string

// Default print parameters. A4 paper, inches.
const (
	defaultPaperWidth  = 8.27
	defaultPaperHeight = 11.69
	defaultTimeout     = 30 * time.Second
)

// Options defines parameters for one export
type Options struct {
	// OutputPath is where the PDF will be written.
	OutputPath string

	// Organization is printed in the document header.
	Organization string

	// Landscape rotates the page, which fits the 7-column grid better.
	Landscape bool

	// Timeout bounds the entire print operation. If zero, a sane
	// default is used.
	Timeout time.Duration
}

type templateData struct {
	Organization string
	WeekLabel    string
	GeneratedAt  string
	Days         []services.DayOverview
}

// Export renders the week overview to HTML, prints it through headless
// Chromium and writes the PDF to opts.OutputPath. Failures surface as
// errors and never touch board state.
func Export(parentCtx context.Context, overview *services.WeekOverviewResult, opts Options) error {
	if opts.OutputPath == "" {
		return fmt.Errorf("pdf export: OutputPath is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	html, err := RenderHTML(overview, opts.Organization, time.Now())
	if err != nil {
		return err
	}

	// Chromium needs a URL to navigate to, so the HTML goes through a
	// temp file served over file://.
	tmpDir, err := os.MkdirTemp("", "fundraiser-pdf-")
	if err != nil {
		return fmt.Errorf("pdf export: failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "week.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return fmt.Errorf("pdf export: failed to write HTML: %w", err)
	}

	pdf, err := printToPDF(parentCtx, "file://"+htmlPath, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0o755); err != nil {
		return fmt.Errorf("pdf export: failed to create output directory: %w", err)
	}
	if err := os.WriteFile(opts.OutputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("pdf export: failed to write PDF: %w", err)
	}

	return nil
}

// RenderHTML produces the printable HTML document for the week. Split
// out from Export so the template can be exercised without Chromium.
func RenderHTML(overview *services.WeekOverviewResult, organization string, generatedAt time.Time) ([]byte, error) {
	tmpl, err := template.New("week").Parse(weekTemplate)
	if err != nil {
		return nil, fmt.Errorf("pdf export: template does not parse: %w", err)
	}

	weekEnd := overview.WeekStart.AddDate(0, 0, 6)
	data := templateData{
		Organization: organization,
		WeekLabel: fmt.Sprintf("%s – %s",
			overview.WeekStart.Format("Mon 2 Jan 2006"),
			weekEnd.Format("Mon 2 Jan 2006")),
		GeneratedAt: generatedAt.Format("2 Jan 2006 15:04"),
		Days:        overview.Days,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("pdf export: failed to render template: %w", err)
	}
	return buf.Bytes(), nil
}

func printToPDF(parentCtx context.Context, url string, opts Options) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(defaultPaperWidth).
				WithPaperHeight(defaultPaperHeight).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("pdf export: chromedp run failed: %w", err)
	}

	return pdf, nil
}
