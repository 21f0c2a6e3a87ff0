package model

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the error taxonomy surfaced to callers
type ErrorKind string

const (
	ErrKindValidation    ErrorKind = "validation"
	ErrKindConfiguration ErrorKind = "configuration"
	ErrKindUpstream      ErrorKind = "upstream"
)

// User-facing messages. The underlying cause is logged, never shown.
const (
	MsgNoSubject         = "Vui lòng nhập thông tin cần kiểm tra."
	MsgInvalidImage      = "Dữ liệu ảnh không hợp lệ."
	MsgNoAPIKey          = "Chưa cấu hình API Key"
	MsgServiceOverloaded = "Hệ thống AI đang quá tải hoặc gặp lỗi kết nối. Vui lòng thử lại sau."
)

// UserError pairs a message safe to display with the wrapped cause
type UserError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *UserError) Unwrap() error { return e.Err }

// NewValidationError reports a rejected request before any external call
func NewValidationError(message string) *UserError {
	return &UserError{Kind: ErrKindValidation, Message: message}
}

// NewConfigurationError reports a missing precondition such as an API credential
func NewConfigurationError(message string) *UserError {
	return &UserError{Kind: ErrKindConfiguration, Message: message}
}

// NewUpstreamError normalizes an external-service failure to a generic
// retry-suggesting message while keeping the cause for logs
func NewUpstreamError(message string, cause error) *UserError {
	return &UserError{Kind: ErrKindUpstream, Message: message, Err: cause}
}

func kindOf(err error) ErrorKind {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}

func IsValidation(err error) bool    { return kindOf(err) == ErrKindValidation }
func IsConfiguration(err error) bool { return kindOf(err) == ErrKindConfiguration }
func IsUpstream(err error) bool      { return kindOf(err) == ErrKindUpstream }

// UserMessage extracts the displayable message, falling back to a generic one
func UserMessage(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return MsgServiceOverloaded
}
