package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wazard-api/internal/application/dto"
	"github.com/jhoicas/wazard-api/internal/domain"
	"github.com/jhoicas/wazard-api/pkg/logger"
)

// ErrorHandler traduce los errores que devuelven los handlers a status HTTP + dto.ErrorResponse.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	var (
		vErrs    validator.ValidationErrors
		fiberErr *fiber.Error
	)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()}
	case errors.Is(err, domain.ErrEnterRecordNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "ENTER_RECORD_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrCompanyNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.As(err, &vErrs):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(vErrs)}
	case errors.Is(err, errInvalidBody):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()}
	case errors.Is(err, errInvalidPath), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, dto.ErrorResponse{Code: "HTTP_ERROR", Message: fiberErr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}
