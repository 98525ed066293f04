// Package config provides configuration management for the bilingual questionnaire generator.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spbdetonator/manejar/internal/logger"
	"github.com/spbdetonator/manejar/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "manejar-config.json"
	// EnvInputPath is the environment variable name for the input PDF path
	EnvInputPath = "MANEJAR_INPUT"
	// EnvOutputPath is the environment variable name for the output PDF path
	EnvOutputPath = "MANEJAR_OUTPUT"
	// EnvFontPath is the environment variable name for the regular TTF font
	EnvFontPath = "MANEJAR_FONT"
	// EnvFontBoldPath is the environment variable name for the bold TTF font
	EnvFontBoldPath = "MANEJAR_FONT_BOLD"
	// EnvLogFilePath is the environment variable name for the log file path
	EnvLogFilePath = "MANEJAR_LOG"
	// DefaultInputPath is the source questionnaire distributed by the exam board
	DefaultInputPath = "CUESTIONARIO-DE-PREGUNTAS-Y-RESPUESTAS-.OLAVARRIA-NUEVO-3-1.pdf"
	// DefaultOutputPath is the default bilingual output file name
	DefaultOutputPath = "CUESTIONARIO-BILINGUE-ES-RU.pdf"
	// DefaultLogFilePath is the default log file path
	DefaultLogFilePath = "manejar.log"
	// DefaultMinQuestionRunes is the minimum rune length for a line to count as a question
	DefaultMinQuestionRunes = 20
	// DefaultOptionLookaheadLines is how many lines after a question are scanned for options
	DefaultOptionLookaheadLines = 9
	// DefaultMaxOptionsPerQuestion is the maximum number of options collected per question
	DefaultMaxOptionsPerQuestion = 5
	// DefaultBoolFallbackLines is how many lines are scanned for Verdadero/Falso fallback options
	DefaultBoolFallbackLines = 4
	// DefaultSectionHeaderMinRunes is the minimum rune length for an uppercase line
	// to be treated as a section header that ends option collection
	DefaultSectionHeaderMinRunes = 10
)

// ConfigManager manages application configuration
type ConfigManager struct {
	configPath string
	config     *types.Config
}

// NewConfigManager creates a new ConfigManager with the specified config path.
// If configPath is empty, it uses the default path in user's home directory.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to get user home directory", err)
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "manejar", DefaultConfigFileName)
	}

	logger.Info("ConfigManager initialized", logger.String("configPath", configPath))
	return &ConfigManager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

// defaultConfig returns a Config with default values
func defaultConfig() *types.Config {
	return &types.Config{
		InputPath:             DefaultInputPath,
		OutputPath:            DefaultOutputPath,
		LogFilePath:           DefaultLogFilePath,
		MinQuestionRunes:      DefaultMinQuestionRunes,
		OptionLookaheadLines:  DefaultOptionLookaheadLines,
		MaxOptionsPerQuestion: DefaultMaxOptionsPerQuestion,
		BoolFallbackLines:     DefaultBoolFallbackLines,
		SectionHeaderMinRunes: DefaultSectionHeaderMinRunes,
	}
}

// Load loads configuration from the config file.
// If the file doesn't exist, it uses default values.
// Environment variables take precedence over config file paths.
func (m *ConfigManager) Load() error {
	logger.Debug("loading configuration", logger.String("path", m.configPath))

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, use defaults
			logger.Info("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
		} else {
			logger.Error("failed to read config file", err, logger.String("path", m.configPath))
			return types.NewAppError(types.ErrConfig, "failed to read config file", err)
		}
	} else {
		config := &types.Config{}
		if err := json.Unmarshal(data, config); err != nil {
			// Invalid JSON, use defaults
			logger.Warn("invalid config file format, using defaults", logger.String("path", m.configPath), logger.Err(err))
			m.config = defaultConfig()
		} else {
			logger.Info("configuration loaded successfully",
				logger.String("path", m.configPath),
				logger.String("input", config.InputPath),
				logger.String("output", config.OutputPath))
			m.config = config
		}
	}

	// Apply defaults for empty fields
	if m.config.InputPath == "" {
		m.config.InputPath = DefaultInputPath
	}
	if m.config.OutputPath == "" {
		m.config.OutputPath = DefaultOutputPath
	}
	if m.config.LogFilePath == "" {
		m.config.LogFilePath = DefaultLogFilePath
	}
	if m.config.MinQuestionRunes == 0 {
		m.config.MinQuestionRunes = DefaultMinQuestionRunes
	}
	if m.config.OptionLookaheadLines == 0 {
		m.config.OptionLookaheadLines = DefaultOptionLookaheadLines
	}
	if m.config.MaxOptionsPerQuestion == 0 {
		m.config.MaxOptionsPerQuestion = DefaultMaxOptionsPerQuestion
	}
	if m.config.BoolFallbackLines == 0 {
		m.config.BoolFallbackLines = DefaultBoolFallbackLines
	}
	if m.config.SectionHeaderMinRunes == 0 {
		m.config.SectionHeaderMinRunes = DefaultSectionHeaderMinRunes
	}

	// Environment overrides
	if v := os.Getenv(EnvInputPath); v != "" {
		m.config.InputPath = v
	}
	if v := os.Getenv(EnvOutputPath); v != "" {
		m.config.OutputPath = v
	}
	if v := os.Getenv(EnvFontPath); v != "" {
		m.config.FontPath = v
	}
	if v := os.Getenv(EnvFontBoldPath); v != "" {
		m.config.FontBoldPath = v
	}
	if v := os.Getenv(EnvLogFilePath); v != "" {
		m.config.LogFilePath = v
	}

	return nil
}

// Save saves the current configuration to the config file.
func (m *ConfigManager) Save() error {
	logger.Debug("saving configuration", logger.String("path", m.configPath))

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("failed to create config directory", err, logger.String("dir", dir))
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		logger.Error("failed to marshal config", err)
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		logger.Error("failed to write config file", err, logger.String("path", m.configPath))
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	logger.Info("configuration saved successfully", logger.String("path", m.configPath))
	return nil
}

// GetConfig returns the current configuration.
func (m *ConfigManager) GetConfig() *types.Config {
	if m.config == nil {
		return defaultConfig()
	}
	return m.config
}

// SetConfig sets the entire configuration.
func (m *ConfigManager) SetConfig(config *types.Config) {
	m.config = config
}

// GetConfigPath returns the path to the config file.
func (m *ConfigManager) GetConfigPath() string {
	return m.configPath
}

// GetInputPath returns the input PDF path.
func (m *ConfigManager) GetInputPath() string {
	if m.config != nil && m.config.InputPath != "" {
		return m.config.InputPath
	}
	return DefaultInputPath
}

// SetInputPath sets the input PDF path.
func (m *ConfigManager) SetInputPath(path string) {
	if m.config == nil {
		m.config = defaultConfig()
	}
	m.config.InputPath = path
}

// GetOutputPath returns the output PDF path.
func (m *ConfigManager) GetOutputPath() string {
	if m.config != nil && m.config.OutputPath != "" {
		return m.config.OutputPath
	}
	return DefaultOutputPath
}

// SetOutputPath sets the output PDF path.
func (m *ConfigManager) SetOutputPath(path string) {
	if m.config == nil {
		m.config = defaultConfig()
	}
	m.config.OutputPath = path
}

// GetFontPath returns the configured regular TTF font path, or empty
// if the renderer should search system font locations.
func (m *ConfigManager) GetFontPath() string {
	if m.config != nil {
		return m.config.FontPath
	}
	return ""
}

// GetFontBoldPath returns the configured bold TTF font path, or empty
// if the renderer should search system font locations.
func (m *ConfigManager) GetFontBoldPath() string {
	if m.config != nil {
		return m.config.FontBoldPath
	}
	return ""
}

// GetLogFilePath returns the log file path.
func (m *ConfigManager) GetLogFilePath() string {
	if m.config != nil && m.config.LogFilePath != "" {
		return m.config.LogFilePath
	}
	return DefaultLogFilePath
}
