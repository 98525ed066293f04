package extractor

import (
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/spbdetonator/manejar/internal/config"
	"github.com/spbdetonator/manejar/internal/logger"
	"github.com/spbdetonator/manejar/internal/types"
)

var (
	// letteredOptionRe matches multiple choice options like "A. texto"
	letteredOptionRe = regexp.MustCompile(`^[ABC]\.\s+`)
	// booleanOptionRe matches bulleted true/false options
	booleanOptionRe = regexp.MustCompile(`^•\s*(Verdadero|Falso)`)
)

// boilerplateMarkers flag header and title-page lines of the source
// questionnaire. Matching is lowercase substring.
var boilerplateMarkers = []string{
	"batería de preguntas",
	"preguntas examen",
	"licencia de conducir",
	"anexo i:",
	"preguntas generales",
	"algunas de las preguntas",
}

// Extractor 负责从试卷 PDF 中提取考题
type Extractor struct {
	cfg *types.Config
}

// New creates an Extractor using the scan heuristics from cfg.
// Zero-valued heuristics fall back to the package defaults.
func New(cfg *types.Config) *Extractor {
	if cfg == nil {
		cfg = &types.Config{}
	}
	c := *cfg
	if c.MinQuestionRunes == 0 {
		c.MinQuestionRunes = config.DefaultMinQuestionRunes
	}
	if c.OptionLookaheadLines == 0 {
		c.OptionLookaheadLines = config.DefaultOptionLookaheadLines
	}
	if c.MaxOptionsPerQuestion == 0 {
		c.MaxOptionsPerQuestion = config.DefaultMaxOptionsPerQuestion
	}
	if c.BoolFallbackLines == 0 {
		c.BoolFallbackLines = config.DefaultBoolFallbackLines
	}
	if c.SectionHeaderMinRunes == 0 {
		c.SectionHeaderMinRunes = config.DefaultSectionHeaderMinRunes
	}
	return &Extractor{cfg: &c}
}

// ExtractQuestions reads the PDF at pdfPath and returns the questions found
// in document order, numbered from 1, together with scan statistics.
// An empty result is not an error; the caller decides how to react.
func (e *Extractor) ExtractQuestions(pdfPath string) ([]types.Question, *Stats, error) {
	lines, pages, err := e.extractLines(pdfPath)
	if err != nil {
		return nil, nil, err
	}

	filtered, dropped := e.FilterLines(lines)
	questions, skipped := e.Scan(filtered)

	stats := &Stats{
		Pages:             pages,
		RawLines:          len(lines),
		FilteredLines:     dropped,
		Candidates:        len(questions) + skipped,
		SkippedCandidates: skipped,
		Questions:         len(questions),
	}

	logger.Info("extraction finished",
		logger.String("path", pdfPath),
		logger.Int("pages", stats.Pages),
		logger.Int("rawLines", stats.RawLines),
		logger.Int("filteredLines", stats.FilteredLines),
		logger.Int("candidates", stats.Candidates),
		logger.Int("skippedCandidates", stats.SkippedCandidates),
		logger.Int("questions", stats.Questions))

	return questions, stats, nil
}

// extractLines opens the PDF and returns its text rows as trimmed,
// NFC-normalized lines in reading order, plus the page count.
func (e *Extractor) extractLines(pdfPath string) ([]string, int, error) {
	fileInfo, err := os.Stat(pdfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, NewExtractError(ErrSourceNotFound, "source PDF not found", err)
		}
		return nil, 0, NewExtractError(ErrSourceInvalid, "cannot access source PDF", err)
	}
	if fileInfo.IsDir() {
		return nil, 0, NewExtractError(ErrSourceInvalid, "path is a directory, not a PDF", nil)
	}

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, 0, NewExtractError(ErrSourceInvalid, "cannot open source PDF", err)
	}
	defer f.Close()

	var lines []string
	totalPages := r.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// Keep going, a single unreadable page should not kill the run
			logger.Warn("failed to read page text", logger.Int("page", pageNum), logger.Err(err))
			continue
		}

		for _, row := range rows {
			if len(row.Content) == 0 {
				continue
			}
			var sb strings.Builder
			for _, text := range row.Content {
				sb.WriteString(text.S)
			}
			line := strings.TrimSpace(norm.NFC.String(sb.String()))
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		logger.Warn("no extractable text in source PDF", logger.String("path", pdfPath))
	}

	return lines, totalPages, nil
}

// FilterLines drops boilerplate header and title lines. It returns the
// surviving lines and the number of lines dropped.
func (e *Extractor) FilterLines(lines []string) ([]string, int) {
	var filtered []string
	dropped := 0
	for _, line := range lines {
		if isBoilerplate(line) {
			dropped++
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered, dropped
}

func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Scan walks the filtered lines and assembles questions. A line ending in
// "?" and longer than the configured minimum starts a question; the lines
// after it are scanned for lettered or bulleted options until another
// question, a section header, or the lookahead limit is hit. Questions
// whose lookahead finds no options get one more chance: if both
// "Verdadero" and "Falso" occur shortly after the question line, a
// synthetic true/false option pair is attached. Candidates that still
// have no options are dropped and counted.
func (e *Extractor) Scan(lines []string) ([]types.Question, int) {
	var questions []types.Question
	skipped := 0
	questionNum := 1

	i := 0
	for i < len(lines) {
		line := lines[i]
		if !e.isQuestionCandidate(line) {
			i++
			continue
		}

		var options []string
		j := i + 1
		for j < len(lines) && j < i+1+e.cfg.OptionLookaheadLines && len(options) < e.cfg.MaxOptionsPerQuestion {
			next := lines[j]
			if letteredOptionRe.MatchString(next) || booleanOptionRe.MatchString(next) {
				options = append(options, next)
			} else if e.isQuestionCandidate(next) {
				break
			} else if e.isSectionHeader(next) {
				break
			}
			j++
		}

		// True/false questions often carry their options as plain text
		if len(options) == 0 {
			j = i + 1
			verdaderoFound := false
			falsoFound := false
			for j < len(lines) && j < i+1+e.cfg.BoolFallbackLines {
				if strings.Contains(lines[j], "Verdadero") {
					verdaderoFound = true
				}
				if strings.Contains(lines[j], "Falso") {
					falsoFound = true
				}
				j++
			}
			if verdaderoFound && falsoFound {
				options = []string{"• Verdadero", "• Falso"}
			}
		}

		if len(options) > 0 {
			questions = append(questions, types.Question{
				Number:   questionNum,
				Question: line,
				Options:  options,
			})
			questionNum++
			i = j
		} else {
			logger.Debug("question candidate without options dropped", logger.String("line", line))
			skipped++
			i++
		}
	}

	return questions, skipped
}

// isQuestionCandidate reports whether line looks like a question stem.
func (e *Extractor) isQuestionCandidate(line string) bool {
	return strings.HasSuffix(line, "?") && utf8.RuneCountInString(line) > e.cfg.MinQuestionRunes
}

// isSectionHeader reports whether line looks like an uppercase section
// header that ends option collection.
func (e *Extractor) isSectionHeader(line string) bool {
	return isAllUpperCase(line) && utf8.RuneCountInString(line) > e.cfg.SectionHeaderMinRunes
}

// isAllUpperCase checks if text is all uppercase letters
func isAllUpperCase(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
