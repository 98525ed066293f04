package main

import (
	"fmt"
	"os"

	"github.com/spbdetonator/manejar/internal/config"
	"github.com/spbdetonator/manejar/internal/extractor"
	"github.com/spbdetonator/manejar/internal/logger"
	"github.com/spbdetonator/manejar/internal/renderer"
	"github.com/spbdetonator/manejar/internal/translator"
)

func main() {
	if len(os.Args) > 3 || (len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help")) {
		fmt.Println("Usage: manejar [input.pdf [output.pdf]]")
		fmt.Println()
		fmt.Println("Extracts the questions from a Spanish traffic exam questionnaire PDF")
		fmt.Println("and writes a bilingual Spanish-Russian PDF.")
		fmt.Println()
		fmt.Printf("Defaults: input %s, output %s\n", config.DefaultInputPath, config.DefaultOutputPath)
		fmt.Printf("Environment: %s, %s, %s, %s, %s\n",
			config.EnvInputPath, config.EnvOutputPath, config.EnvFontPath,
			config.EnvFontBoldPath, config.EnvLogFilePath)
		os.Exit(1)
	}

	cm, err := config.NewConfigManager("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cm.Load(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Positional arguments beat config file and environment
	if len(os.Args) >= 2 {
		cm.SetInputPath(os.Args[1])
	}
	if len(os.Args) >= 3 {
		cm.SetOutputPath(os.Args[2])
	}
	cfg := cm.GetConfig()

	if err := logger.Init(&logger.Config{
		LogFilePath: cfg.LogFilePath,
		Level:       logger.LevelInfo,
	}); err != nil {
		fmt.Printf("Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if _, err := os.Stat(cfg.InputPath); err != nil {
		fmt.Printf("Error: PDF not found: %s\n", cfg.InputPath)
		os.Exit(1)
	}

	fmt.Printf("Input:  %s\n", cfg.InputPath)
	fmt.Printf("Output: %s\n", cfg.OutputPath)
	fmt.Println()

	fmt.Println("Extracting questions from PDF...")
	ext := extractor.New(cfg)
	questions, stats, err := ext.ExtractQuestions(cfg.InputPath)
	if err != nil {
		logger.Error("extraction failed", err, logger.String("input", cfg.InputPath))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Extracted %d questions\n", len(questions))
	if stats.SkippedCandidates > 0 {
		fmt.Printf("Skipped %d question-like lines without options\n", stats.SkippedCandidates)
	}
	if len(questions) == 0 {
		logger.Warn("no questions extracted", logger.String("input", cfg.InputPath))
		fmt.Println("Warning: no questions found, the output will contain only the title page")
	}

	fmt.Println("Creating bilingual PDF...")
	r := renderer.New(cfg, translator.New())
	r.Progress = func(done, total int) {
		fmt.Printf("Processing question %d/%d\n", done, total)
	}
	pages, err := r.Render(questions, cfg.OutputPath)
	if err != nil {
		logger.Error("rendering failed", err, logger.String("output", cfg.OutputPath))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bilingual PDF created successfully: %s (%d pages)\n", cfg.OutputPath, pages)
}
