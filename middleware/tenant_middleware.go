package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-office-backend/lib/utils/auth-utils"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
)

// TenantRequired отклоняет запросы без тенанта/пользователя в токене.
// Всё остальное ядро доверяет этой паре идентификаторов.
func TenantRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetTenantID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(&models.DomainError{
				Code:       models.ErrCodeValidationFailed,
				Message:    "No tenant associated with token",
				StatusCode: fiber.StatusForbidden,
			}))
		}
		if GetUserID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(&models.DomainError{
				Code:       models.ErrCodeValidationFailed,
				Message:    "No user associated with token",
				StatusCode: fiber.StatusForbidden,
			}))
		}
		return ctx.Next()
	}
}

func GetTenantID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if tenant, exist := claims["tenant_id"]; exist {
		if stringTenant, ok := tenant.(string); ok {
			return stringTenant
		}
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["user_id"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}
