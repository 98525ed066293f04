// Package renderer builds the bilingual A4 output PDF from extracted
// questions and their Russian translations.
package renderer

import (
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/spbdetonator/manejar/internal/logger"
	"github.com/spbdetonator/manejar/internal/translator"
	"github.com/spbdetonator/manejar/internal/types"
)

const (
	// pageMargin is 0.75 inch in points
	pageMargin = 54.0

	fontFamily = "uni"

	titleFontSize    = 16.0
	subtitleFontSize = 10.0
	questionFontSize = 10.0
	optionFontSize   = 9.0

	optionIndent    = 15.0
	questionSpacing = 12.0
	titleSpacing    = 20.0
	subtitleSpacing = 15.0

	lineHeightFactor = 1.35
)

const (
	titleLine1    = "CUESTIONARIO BILINGÜE ESPAÑOL-RUSO"
	titleLine2    = "ESPAÑOL-РУССКИЙ ВОПРОСНИК"
	subtitleLine1 = "Preguntas de Examen Teórico - Licencia de Conducir"
	subtitleLine2 = "Вопросы теоретического экзамена - Водительские права"
)

// Renderer 生成双语 PDF
type Renderer struct {
	cfg  *types.Config
	tr   *translator.Translator
	conf *model.Configuration

	// Progress, when set, is called after each rendered question.
	Progress func(done, total int)
}

// New creates a Renderer using the font configuration from cfg and the
// given translator for the Russian half of each question block.
func New(cfg *types.Config, tr *translator.Translator) *Renderer {
	if tr == nil {
		tr = translator.New()
	}
	return &Renderer{
		cfg:  cfg,
		tr:   tr,
		conf: model.NewDefaultConfiguration(),
	}
}

// Render writes the bilingual questionnaire PDF to outputPath. Each question
// becomes one block: numbered Spanish question in bold, its options indented
// below, then the Russian question and options in dark blue. The generated
// file is validated before Render returns; the returned count is the page
// count of the validated file.
func (r *Renderer) Render(questions []types.Question, outputPath string) (int, error) {
	regularFont, boldFont, err := ResolveFonts(r.cfg)
	if err != nil {
		return 0, err
	}

	// gofpdf resolves AddUTF8Font file names against its own font dir,
	// which breaks absolute paths, so the TTFs are loaded as bytes.
	regularTTF, err := os.ReadFile(regularFont)
	if err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrFont, "cannot read TTF font", regularFont, err)
	}
	boldTTF, err := os.ReadFile(boldFont)
	if err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrFont, "cannot read bold TTF font", boldFont, err)
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	pdf.AddUTF8FontFromBytes(fontFamily, "", regularTTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", boldTTF)
	if err := pdf.Error(); err != nil {
		return 0, types.NewAppError(types.ErrFont, "failed to load TTF font", err)
	}

	pdf.AddPage()
	r.writeHeader(pdf)

	total := len(questions)
	for i, q := range questions {
		r.writeQuestion(pdf, q)
		if r.Progress != nil {
			r.Progress(i+1, total)
		}
	}

	if err := pdf.Error(); err != nil {
		return 0, types.NewAppError(types.ErrRender, "failed to compose output PDF", err)
	}
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrRender, "failed to write output PDF", outputPath, err)
	}

	return r.validateOutput(outputPath)
}

// writeHeader renders the centered bilingual title and subtitle.
func (r *Renderer) writeHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont(fontFamily, "B", titleFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, titleFontSize*lineHeightFactor, titleLine1+"\n"+titleLine2, "", "C", false)
	pdf.Ln(titleSpacing)

	pdf.SetFont(fontFamily, "", subtitleFontSize)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(0, subtitleFontSize*lineHeightFactor, subtitleLine1+"\n"+subtitleLine2, "", "C", false)
	pdf.Ln(subtitleSpacing)
}

// writeQuestion renders one bilingual question block.
func (r *Renderer) writeQuestion(pdf *gofpdf.Fpdf, q types.Question) {
	num := strconv.Itoa(q.Number)

	// Spanish question, bold black
	pdf.SetFont(fontFamily, "B", questionFontSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, questionFontSize*lineHeightFactor, Sanitize(num+". "+q.Question), "", "L", false)

	// Spanish options, indented
	pdf.SetFont(fontFamily, "", optionFontSize)
	pdf.SetLeftMargin(pageMargin + optionIndent)
	pdf.SetX(pageMargin + optionIndent)
	for _, opt := range q.Options {
		pdf.MultiCell(0, optionFontSize*lineHeightFactor, Sanitize(opt), "", "L", false)
	}
	pdf.SetLeftMargin(pageMargin)
	pdf.SetX(pageMargin)

	// Russian question, bold dark blue
	pdf.SetFont(fontFamily, "B", questionFontSize)
	pdf.SetTextColor(0, 0, 139)
	pdf.MultiCell(0, questionFontSize*lineHeightFactor, Sanitize(num+". "+r.tr.Translate(q.Question)), "", "L", false)

	// Russian options, indented dark blue
	pdf.SetFont(fontFamily, "", optionFontSize)
	pdf.SetLeftMargin(pageMargin + optionIndent)
	pdf.SetX(pageMargin + optionIndent)
	for _, opt := range q.Options {
		pdf.MultiCell(0, optionFontSize*lineHeightFactor, Sanitize(r.tr.Translate(opt)), "", "L", false)
	}
	pdf.SetLeftMargin(pageMargin)
	pdf.SetX(pageMargin)
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(questionSpacing)
}

// validateOutput checks the generated file with pdfcpu.
func (r *Renderer) validateOutput(outputPath string) (int, error) {
	if err := api.ValidateFile(outputPath, r.conf); err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrRender, "generated PDF failed validation", outputPath, err)
	}

	pageCount, err := api.PageCountFile(outputPath)
	if err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrRender, "cannot read generated PDF", outputPath, err)
	}

	logger.Info("output PDF validated", logger.String("path", outputPath), logger.Int("pages", pageCount))
	return pageCount, nil
}

// Sanitize prepares extracted text for a single rendered line. Tabs and
// line breaks become spaces, other control characters are dropped, and
// whitespace runs collapse to one space.
func Sanitize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case r < 32:
			return -1
		case r >= 0x7F && r <= 0x9F:
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}
