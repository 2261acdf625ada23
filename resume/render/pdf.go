package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"resume-tailor/resume/layout"
	"resume-tailor/resume/model"
	"resume-tailor/resume/template"
)

// PDFMimeType is the content type of rendered artifacts.
const PDFMimeType = "application/pdf"

// Output is fixed so identical documents produce identical bytes.
var fixedCreationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var coreFamilies = map[string]bool{
	"courier":   true,
	"helvetica": true,
	"arial":     true,
	"times":     true,
}

var fontStyles = []string{layout.Regular, layout.Bold, layout.Italic}

// Artifact is a rendered PDF.
type Artifact struct {
	PDF    []byte
	Pages  int
	Family string
}

// PDFOptions configures the PDF renderer.
type PDFOptions struct {
	// FontDir holds extra TrueType families as <family>.ttf with optional
	// <family>-B.ttf and <family>-I.ttf variants.
	FontDir string
	Title   string
}

// PDFRenderer replays a layout into a PDF using gofpdf.
type PDFRenderer struct {
	fontDir string
	title   string
	// family -> style -> file name inside fontDir
	extra map[string]map[string]string
}

// NewPDFRenderer scans FontDir for extra families. A missing or unreadable
// directory simply leaves only the core fonts available.
func NewPDFRenderer(opts PDFOptions) *PDFRenderer {
	r := &PDFRenderer{
		fontDir: opts.FontDir,
		title:   opts.Title,
		extra:   map[string]map[string]string{},
	}
	if r.title == "" {
		r.title = "Resume"
	}
	if opts.FontDir == "" {
		return r
	}
	entries, err := os.ReadDir(opts.FontDir)
	if err != nil {
		return r
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".ttf") {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		family, style := base, layout.Regular
		if i := strings.LastIndex(base, "-"); i > 0 {
			switch strings.ToUpper(base[i+1:]) {
			case "B":
				family, style = base[:i], layout.Bold
			case "I":
				family, style = base[:i], layout.Italic
			}
		}
		family = strings.ToLower(family)
		if r.extra[family] == nil {
			r.extra[family] = map[string]string{}
		}
		r.extra[family][style] = name
	}
	for family, files := range r.extra {
		regular, ok := files[layout.Regular]
		if !ok {
			delete(r.extra, family)
			continue
		}
		for _, style := range fontStyles {
			if _, ok := files[style]; !ok {
				files[style] = regular
			}
		}
	}
	return r
}

// Families lists every drawable family.
func (r *PDFRenderer) Families() []string {
	return append([]string{"courier", "helvetica", "times"}, r.extraFamilies()...)
}

func (r *PDFRenderer) extraFamilies() []string {
	out := make([]string, 0, len(r.extra))
	for family := range r.extra {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

// Render lays out doc with style and draws it.
func (r *PDFRenderer) Render(ctx context.Context, doc model.Document, style template.Style) (Artifact, error) {
	m := r.newMeasurer()
	lay := layout.Paginate(doc, style, m)
	if err := m.err(); err != nil {
		return Artifact{}, errors.Wrap(err, "measure text")
	}
	return r.Draw(ctx, lay)
}

// Draw replays an already paginated document.
func (r *PDFRenderer) Draw(ctx context.Context, lay layout.Document) (Artifact, error) {
	pdf := r.newPDF()
	pdf.SetTitle(r.title, true)
	pdf.SetCreator("resume-tailor", true)
	tr := r.translator(pdf, lay.Family)

	for _, page := range lay.Pages {
		if err := ctx.Err(); err != nil {
			return Artifact{}, errors.Wrap(err, "render pdf")
		}
		pdf.AddPage()
		for _, line := range page.Lines {
			pdf.SetFont(line.Font.Family, line.Font.Style, line.Font.Size)
			pdf.SetTextColor(line.Color.R, line.Color.G, line.Color.B)
			pdf.Text(line.X, line.Y, tr(line.Text))
		}
		for _, rule := range page.Rules {
			pdf.SetDrawColor(0, 0, 0)
			pdf.SetLineWidth(rule.Width)
			pdf.Line(rule.X1, rule.Y, rule.X2, rule.Y)
		}
	}
	if pdf.Err() {
		return Artifact{}, errors.Wrap(pdf.Error(), "render pdf")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Artifact{}, errors.Wrap(err, "write pdf")
	}
	return Artifact{PDF: buf.Bytes(), Pages: len(lay.Pages), Family: lay.Family}, nil
}

func (r *PDFRenderer) newPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", r.fontDir)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(fixedCreationDate)
	pdf.SetModificationDate(fixedCreationDate)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)
	for _, family := range r.extraFamilies() {
		for _, style := range fontStyles {
			pdf.AddUTF8Font(family, style, r.extra[family][style])
		}
	}
	return pdf
}

// translator converts UTF-8 into the cp1252 encoding the core fonts expect.
// Registered TrueType families take UTF-8 as is.
func (r *PDFRenderer) translator(pdf *gofpdf.Fpdf, family string) func(string) string {
	if _, ok := r.extra[family]; ok {
		return func(s string) string { return s }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func (r *PDFRenderer) newMeasurer() *pdfMeasurer {
	pdf := r.newPDF()
	return &pdfMeasurer{r: r, pdf: pdf, cp1252: pdf.UnicodeTranslatorFromDescriptor("")}
}

type pdfMeasurer struct {
	r      *PDFRenderer
	pdf    *gofpdf.Fpdf
	cp1252 func(string) string
}

func (m *pdfMeasurer) TextWidth(font layout.Font, text string) float64 {
	m.pdf.SetFont(font.Family, font.Style, font.Size)
	if _, ok := m.r.extra[font.Family]; !ok {
		text = m.cp1252(text)
	}
	return m.pdf.GetStringWidth(text)
}

func (m *pdfMeasurer) HasFamily(family string) bool {
	if coreFamilies[family] {
		return true
	}
	_, ok := m.r.extra[family]
	return ok
}

func (m *pdfMeasurer) err() error {
	if m.pdf.Err() {
		return m.pdf.Error()
	}
	return nil
}
