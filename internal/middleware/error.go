package middleware

import (
	"errors"
	"net/http"

	"notionary/internal/domain"
	"notionary/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorHandler is the centralized error handler. Pipeline failures are
// collapsed into a single generic 500 so that clients never see a partial
// response or provider internals; invalid input maps to 400.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.String("path", c.Path()),
				zap.Error(domainErr.Err),
			)

			if domainErr.Code == domain.ErrInvalidInput {
				return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
					Code:    string(domainErr.Code),
					Message: domainErr.Message,
					Status:  http.StatusBadRequest,
				})
			}

			// SourceUnavailable, ModelUnavailable and ModelOutputInvalid all
			// surface identically; the details stay in the logs.
			message := "Internal server error"
			if domain.IsPipelineError(domainErr) {
				message = "Failed to generate quiz"
			}
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Code:    string(domain.ErrInternal),
				Message: message,
				Status:  http.StatusInternalServerError,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.ErrInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}
