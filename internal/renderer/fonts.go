package renderer

import (
	"os"

	"github.com/spbdetonator/manejar/internal/logger"
	"github.com/spbdetonator/manejar/internal/types"
)

// regularFontCandidates are well-known system TTF fonts with Cyrillic
// coverage, tried in order when no font is configured.
var regularFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// boldFontCandidates mirror regularFontCandidates with bold weights.
var boldFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf",
	"/usr/share/fonts/noto/NotoSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// ResolveFonts returns the TTF paths to use for the regular and bold faces.
// Configured paths win; otherwise the system candidates are searched. The
// output needs Cyrillic glyphs, so a missing regular font is a hard error.
// A missing bold face falls back to the regular file.
func ResolveFonts(cfg *types.Config) (regular, bold string, err error) {
	if cfg != nil && cfg.FontPath != "" {
		if !fileExists(cfg.FontPath) {
			return "", "", types.NewAppErrorWithDetails(types.ErrFont,
				"configured font file not found", cfg.FontPath, nil)
		}
		regular = cfg.FontPath
	} else {
		regular = firstExisting(regularFontCandidates)
		if regular == "" {
			return "", "", types.NewAppError(types.ErrFont,
				"no Unicode TTF font found; install DejaVu, Noto or Liberation fonts, or set MANEJAR_FONT", nil)
		}
	}

	if cfg != nil && cfg.FontBoldPath != "" {
		if !fileExists(cfg.FontBoldPath) {
			return "", "", types.NewAppErrorWithDetails(types.ErrFont,
				"configured bold font file not found", cfg.FontBoldPath, nil)
		}
		bold = cfg.FontBoldPath
	} else {
		bold = firstExisting(boldFontCandidates)
		if bold == "" {
			logger.Warn("no bold font found, reusing regular face", logger.String("font", regular))
			bold = regular
		}
	}

	logger.Info("fonts resolved", logger.String("regular", regular), logger.String("bold", bold))
	return regular, bold, nil
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
