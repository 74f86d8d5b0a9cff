package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/fiberlog"
	"hr-office-backend/middleware"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField(fiberlog.RequestID, ctx.Get(fiber.HeaderXRequestID)).
		WithField("tenant_id", middleware.GetTenantID(ctx)).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError переводит доменную ошибку в конверт ответа.
// Любая другая ошибка логируется и уходит клиенту как 500 без
// внутренних подробностей.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, logMsg string) error {
	if domainErr, ok := models.AsDomainError(err); ok {
		return ctx.Status(domainErr.StatusCode).JSON(apimodels.NewError(domainErr))
	}
	logger.WithError(err).Error(logMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(&models.DomainError{
		Code:       models.ErrCodeInternal,
		Message:    "Internal server error",
		StatusCode: fiber.StatusInternalServerError,
	}))
}

// SendBadRequest - ошибки разбора запроса до обращения к ядру.
func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(&models.DomainError{
		Code:       models.ErrCodeValidationFailed,
		Message:    message,
		StatusCode: fiber.StatusBadRequest,
	}))
}
