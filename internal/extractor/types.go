// Package extractor pulls exam questions out of the source questionnaire PDF.
package extractor

// ExtractErrorCode 错误代码枚举
type ExtractErrorCode string

const (
	ErrSourceNotFound ExtractErrorCode = "SOURCE_NOT_FOUND"
	ErrSourceInvalid  ExtractErrorCode = "SOURCE_INVALID"
	ErrScanFailed     ExtractErrorCode = "SCAN_FAILED"
)

// ExtractError 提取错误
type ExtractError struct {
	Code    ExtractErrorCode `json:"code"`
	Message string           `json:"message"`
	Details string           `json:"details,omitempty"`
	Page    int              `json:"page,omitempty"`
	Cause   error            `json:"-"`
}

// Error implements the error interface for ExtractError
func (e *ExtractError) Error() string {
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
func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// NewExtractError creates a new ExtractError with the given code, message, and optional cause
func NewExtractError(code ExtractErrorCode, message string, cause error) *ExtractError {
	return &ExtractError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewExtractErrorWithDetails creates a new ExtractError with details
func NewExtractErrorWithDetails(code ExtractErrorCode, message, details string, cause error) *ExtractError {
	return &ExtractError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// Stats 提取统计
type Stats struct {
	Pages             int `json:"pages"`
	RawLines          int `json:"raw_lines"`
	FilteredLines     int `json:"filtered_lines"`     // boilerplate lines dropped
	Candidates        int `json:"candidates"`         // question-like lines seen
	SkippedCandidates int `json:"skipped_candidates"` // question-like lines with no options found
	Questions         int `json:"questions"`
}
