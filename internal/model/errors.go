// Package model はドメインモデルを定義する。
package model

import "fmt"

// ErrorKind はAPIエラーの種別を表す。種別ごとにHTTPステータスへの対応が決まる。
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
	KindDatabase
)

// String はログ出力向けの種別名を返す。
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	case KindDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// AppError は統一エラーフォーマットを表す。
// Messageはそのままレスポンスに載せる文言で、内部原因はErrにのみ保持する。
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error はerrorインターフェースを実装する。
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap は内部原因を返す。原因を持たないエラーではnilを返す。
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError はリソース未検出エラーを生成する。Messageにはリソース名のみを載せる。
func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource}
}

// NewValidationError は入力検証エラーを生成する。
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewUnauthorizedError は未認証エラーを生成する。
func NewUnauthorizedError() *AppError {
	return &AppError{Kind: KindUnauthorized, Message: "unauthorized"}
}

// NewForbiddenError は権限不足エラーを生成する。
func NewForbiddenError() *AppError {
	return &AppError{Kind: KindForbidden, Message: "forbidden"}
}

// NewConflictError は一意制約違反などの競合エラーを生成する。
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewInternalError は内部エラーを生成する。原因はログ専用で、レスポンスには載せない。
func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal error", Err: err}
}

// NewDatabaseError はデータベース起因のエラーを生成する。原因はログ専用で、レスポンスには載せない。
func NewDatabaseError(err error) *AppError {
	return &AppError{Kind: KindDatabase, Message: "internal error", Err: err}
}
