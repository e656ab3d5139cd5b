package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation           ErrorCode = "validation"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeForbidden            ErrorCode = "forbidden"
	ErrorCodeConflict             ErrorCode = "conflict"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeUnsupportedMediaType ErrorCode = "unsupported_media_type"
	ErrorCodeStorage              ErrorCode = "storage"
	ErrorCodeInternal             ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

// NewAuthRequiredError 未登录访问需要登录的操作
func NewAuthRequiredError() error {
	return NewServiceError(ErrorCodeUnauthorized, "请先登录")
}

// NewInvalidCredentialsError 用户名不存在与密码错误使用同一条提示
func NewInvalidCredentialsError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewUnsupportedMediaTypeError(message string) error {
	return NewServiceError(ErrorCodeUnsupportedMediaType, message)
}

func NewStorageError(message string) error {
	return NewServiceError(ErrorCodeStorage, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// HasCode 判断错误是否为指定错误码的业务错误
func HasCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
