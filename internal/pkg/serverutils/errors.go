package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is an error with the HTTP status it should be reported as.
type AppError struct {
	Code    int
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func NewConflictError(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

func NewUnprocessableError(message string) *AppError {
	return NewAppError(fiber.StatusUnprocessableEntity, message)
}

func NewBadGatewayError(message string) *AppError {
	return NewAppError(fiber.StatusBadGateway, message)
}

// ErrorHandlerMiddleware turns handler errors into BaseResponse JSON bodies.
// Unknown errors become a 500 without leaking their text.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			res := ErrorResponse(appErr.Code, appErr.Message)
			res.Data = appErr.Details
			return ctx.Status(appErr.Code).JSON(res)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
