package extractor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/spbdetonator/manejar/internal/types"
)

func TestScan_LetteredOptions(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Primera pregunta sobre el tránsito en la vía?",
		"A. Primera opción",
		"B. Segunda opción",
		"C. Tercera opción",
	}

	questions, skipped := e.Scan(lines)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	q := questions[0]
	if q.Number != 1 {
		t.Errorf("Number = %d, want 1", q.Number)
	}
	if q.Question != lines[0] {
		t.Errorf("Question = %q, want %q", q.Question, lines[0])
	}
	if len(q.Options) != 3 {
		t.Fatalf("got %d options, want 3", len(q.Options))
	}
	for i, want := range lines[1:] {
		if q.Options[i] != want {
			t.Errorf("Options[%d] = %q, want %q", i, q.Options[i], want)
		}
	}
}

func TestScan_BulletedBooleanOptions(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿El casco es obligatorio para los motociclistas?",
		"• Verdadero",
		"• Falso",
	}

	questions, _ := e.Scan(lines)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("got %d options, want 2", len(questions[0].Options))
	}
	if questions[0].Options[0] != "• Verdadero" || questions[0].Options[1] != "• Falso" {
		t.Errorf("unexpected options %v", questions[0].Options)
	}
}

func TestScan_BooleanFallbackSynthesizesOptions(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿El cinturón de seguridad es obligatorio para todos?",
		"La respuesta puede ser Verdadero",
		"o también Falso según el caso",
	}

	questions, skipped := e.Scan(lines)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}

	want := []string{"• Verdadero", "• Falso"}
	got := questions[0].Options
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Options = %v, want %v", got, want)
	}
}

func TestScan_FallbackNeedsBothWords(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿El cinturón de seguridad es obligatorio para todos?",
		"La respuesta puede ser Verdadero",
		"y nada más que eso",
	}

	questions, skipped := e.Scan(lines)
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestScan_CandidateWithoutOptionsDropped(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Pregunta sin opciones que queda descartada?",
		"Texto normal sin nada especial",
	}

	questions, skipped := e.Scan(lines)
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestScan_NextQuestionStopsCollection(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Primera pregunta sobre el tránsito en la vía?",
		"A. Primera opción",
		"B. Segunda opción",
		"¿Segunda pregunta sobre la seguridad vial urbana?",
		"A. Opción uno",
		"B. Opción dos",
	}

	questions, _ := e.Scan(lines)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if len(questions[0].Options) != 2 {
		t.Errorf("first question got %d options, want 2", len(questions[0].Options))
	}
	if len(questions[1].Options) != 2 {
		t.Errorf("second question got %d options, want 2", len(questions[1].Options))
	}
	if questions[0].Number != 1 || questions[1].Number != 2 {
		t.Errorf("numbers = %d, %d, want 1, 2", questions[0].Number, questions[1].Number)
	}
}

func TestScan_SectionHeaderStopsCollection(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Primera pregunta sobre el tránsito en la vía?",
		"A. Primera opción",
		"PREGUNTAS DE SEGURIDAD",
		"B. Opción que ya no pertenece",
	}

	questions, _ := e.Scan(lines)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if len(questions[0].Options) != 1 {
		t.Errorf("got %d options, want 1: %v", len(questions[0].Options), questions[0].Options)
	}
}

func TestScan_OptionCap(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Pregunta con demasiadas opciones en la lista?",
		"A. uno",
		"B. dos",
		"C. tres",
		"A. cuatro",
		"B. cinco",
		"C. seis",
	}

	questions, _ := e.Scan(lines)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if len(questions[0].Options) != 5 {
		t.Errorf("got %d options, want 5", len(questions[0].Options))
	}
}

func TestScan_LookaheadWindow(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Pregunta cuyas opciones llegan demasiado tarde?",
		"texto de relleno uno",
		"texto de relleno dos",
		"texto de relleno tres",
		"texto de relleno cuatro",
		"texto de relleno cinco",
		"texto de relleno seis",
		"texto de relleno siete",
		"texto de relleno ocho",
		"texto de relleno nueve",
		"A. opción fuera de la ventana",
	}

	questions, skipped := e.Scan(lines)
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0: %v", len(questions), questions)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestScan_NumberingCountsOnlyEmitted(t *testing.T) {
	e := New(nil)

	lines := []string{
		"¿Pregunta descartada por falta de opciones aquí?",
		"relleno sin opciones",
		"relleno sin opciones dos",
		"relleno sin opciones tres",
		"relleno sin opciones cuatro",
		"¿Pregunta válida con sus opciones presentes?",
		"A. Primera opción",
		"B. Segunda opción",
	}

	questions, skipped := e.Scan(lines)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Number != 1 {
		t.Errorf("Number = %d, want 1", questions[0].Number)
	}
}

func TestScan_EmptyInput(t *testing.T) {
	e := New(nil)

	questions, skipped := e.Scan(nil)
	if len(questions) != 0 || skipped != 0 {
		t.Errorf("Scan(nil) = %v, %d, want empty, 0", questions, skipped)
	}
}

func TestIsQuestionCandidate_RuneLength(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{
			name:     "21 runes with question mark",
			line:     strings.Repeat("á", 20) + "?",
			expected: true,
		},
		{
			name:     "exactly 20 runes is too short",
			line:     strings.Repeat("á", 19) + "?",
			expected: false,
		},
		{
			name:     "long line without question mark",
			line:     strings.Repeat("a", 40),
			expected: false,
		},
		{
			name:     "short question",
			line:     "¿Qué es?",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.isQuestionCandidate(tt.line); got != tt.expected {
				t.Errorf("isQuestionCandidate(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestIsSectionHeader(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"uppercase header", "PREGUNTAS DE SEGURIDAD", true},
		{"uppercase but short", "SEGURIDAD", false},
		{"mixed case", "Preguntas de Seguridad Vial", false},
		{"digits only", "1234567890123", false},
		{"accented uppercase", "SEÑALIZACIÓN Y TRÁNSITO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.isSectionHeader(tt.line); got != tt.expected {
				t.Errorf("isSectionHeader(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestFilterLines(t *testing.T) {
	e := New(nil)

	lines := []string{
		"BATERÍA DE PREGUNTAS PARA EL EXAMEN",
		"Preguntas Examen Teórico",
		"ANEXO I: PREGUNTAS GENERALES",
		"¿Pregunta que sobrevive al filtro de cabeceras?",
		"A. Una opción cualquiera",
	}

	filtered, dropped := e.FilterLines(lines)
	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
	if len(filtered) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(filtered), filtered)
	}
	if filtered[0] != lines[3] || filtered[1] != lines[4] {
		t.Errorf("unexpected surviving lines: %v", filtered)
	}
}

func TestNew_DefaultsApplied(t *testing.T) {
	e := New(&types.Config{MinQuestionRunes: 5})
	if e.cfg.MinQuestionRunes != 5 {
		t.Errorf("MinQuestionRunes = %d, want 5", e.cfg.MinQuestionRunes)
	}
	if e.cfg.OptionLookaheadLines == 0 {
		t.Error("OptionLookaheadLines should be defaulted")
	}
	if e.cfg.MaxOptionsPerQuestion == 0 {
		t.Error("MaxOptionsPerQuestion should be defaulted")
	}

	// Lowered threshold admits short questions
	questions, _ := e.Scan([]string{"¿Qué es?", "A. Algo"})
	if len(questions) != 1 {
		t.Errorf("got %d questions with lowered threshold, want 1", len(questions))
	}
}

func TestExtractQuestions_MissingFile(t *testing.T) {
	e := New(nil)

	_, _, err := e.ExtractQuestions("/nonexistent/cuestionario.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *ExtractError, got %T", err)
	}
	if extractErr.Code != ErrSourceNotFound {
		t.Errorf("Code = %s, want %s", extractErr.Code, ErrSourceNotFound)
	}
}

func TestExtractError_IncludesCause(t *testing.T) {
	cause := errors.New("open failed")
	err := NewExtractError(ErrSourceInvalid, "cannot open source PDF", cause)

	want := "cannot open source PDF: open failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

// A readable PDF without any text is not an error, it just yields zero
// questions; only unreadable or invalid files fail hard.
func TestExtractQuestions_TextFreePDF(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "extractor-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "blank.pdf")
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.AddPage()
	if err := doc.OutputFileAndClose(pdfPath); err != nil {
		t.Fatalf("failed to write blank PDF: %v", err)
	}

	e := New(nil)
	questions, stats, err := e.ExtractQuestions(pdfPath)
	if err != nil {
		t.Fatalf("ExtractQuestions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
	if stats == nil {
		t.Fatal("stats missing")
	}
	if stats.Pages != 1 {
		t.Errorf("pages = %d, want 1", stats.Pages)
	}
	if stats.RawLines != 0 {
		t.Errorf("raw lines = %d, want 0", stats.RawLines)
	}
}
