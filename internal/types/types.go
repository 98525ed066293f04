// Package types defines core data types and enums for the bilingual questionnaire generator.
package types

// Question 提取的考题
type Question struct {
	Number   int      `json:"number"`   // 序号，从 1 开始
	Question string   `json:"question"` // 西班牙语题干
	Options  []string `json:"options"`  // 选项，保持原始顺序
}

// Config 应用配置
type Config struct {
	InputPath    string `json:"input_path"`
	OutputPath   string `json:"output_path"`
	FontPath     string `json:"font_path"`      // 常规字重 TTF，需覆盖西里尔字母
	FontBoldPath string `json:"font_bold_path"` // 粗体 TTF
	LogFilePath  string `json:"log_file_path"`

	// 扫描启发式参数，针对源试卷版式调优
	MinQuestionRunes      int `json:"min_question_runes"`       // 题干最小长度（按 rune 计）
	OptionLookaheadLines  int `json:"option_lookahead_lines"`   // 题干后向前扫描的最大行数
	MaxOptionsPerQuestion int `json:"max_options_per_question"` // 每题收集的选项上限
	BoolFallbackLines     int `json:"bool_fallback_lines"`      // 真/假回退扫描的行数
	SectionHeaderMinRunes int `json:"section_header_min_runes"` // 判定章节标题的最小长度
}

// ErrorCode 错误代码枚举
type ErrorCode string

const (
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrExtract      ErrorCode = "EXTRACT_ERROR"
	ErrRender       ErrorCode = "RENDER_ERROR"
	ErrFont         ErrorCode = "FONT_ERROR"
	ErrConfig       ErrorCode = "CONFIG_ERROR"
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}
