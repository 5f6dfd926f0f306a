package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/translatable-api/internal/application/dto"
	"github.com/jhoicas/translatable-api/internal/domain"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

// Códigos de error en ErrorResponse.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeDuplicate        = "DUPLICATE"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotImplemented   = "NOT_IMPLEMENTED"
	CodeInternal         = "INTERNAL"
)

const msgInternal = "Internal server error"

// ErrorHandler traduce los errores de los handlers a respuestas JSON uniformes.
// Los 5xx nunca exponen el detalle; lo registra RequestLogger.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := errorResponse(c, err)
		if status >= fiber.StatusInternalServerError {
			log.Debug().Err(err).Str("path", c.Path()).Msg("error interno")
		}
		return c.Status(status).JSON(body)
	}
}

func errorResponse(c *fiber.Ctx, err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: CodeValidation, Message: verr.Message, Items: verr.Items}
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		switch ferr.Code {
		case fiber.StatusMethodNotAllowed:
			return ferr.Code, dto.ErrorResponse{Code: CodeMethodNotAllowed, Message: fmt.Sprintf("Method %s is not supported for this request", c.Method())}
		case fiber.StatusNotFound:
			return ferr.Code, dto.ErrorResponse{Code: CodeNotFound, Message: fmt.Sprintf("No handler found for %s %s", c.Method(), c.Path())}
		case fiber.StatusInternalServerError:
			return ferr.Code, dto.ErrorResponse{Code: CodeInternal, Message: msgInternal}
		default:
			return ferr.Code, dto.ErrorResponse{Code: CodeBadRequest, Message: ferr.Message}
		}
	}

	message := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: message}
	case errors.Is(err, translatable.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: "Resource not found"}
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, translatable.ErrInvalidArgument):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeBadRequest, Message: message}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeDuplicate, Message: "Resource already exists"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: message}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Message: message}
	case errors.Is(err, translatable.ErrUnsupported):
		return fiber.StatusNotImplemented, dto.ErrorResponse{Code: CodeNotImplemented, Message: message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: msgInternal}
	}
}
