package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	employeehandler "hr-office-backend/lib/employee"
	"hr-office-backend/middleware"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

// InitEmployeeApiRouters регистрируется последним: маршрут :id
// перехватывает остальные пути.
func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("validate", func(router fiber.Router) {
		router.Get("email", controller.validateEmail)
		router.Get("code", controller.validateCode)
		router.Get("username", controller.validateUsername)
	})
	app.Route(":id", func(idRoute fiber.Router) {
		idRoute.Get("", controller.get)
		idRoute.Put("", controller.update)
		idRoute.Patch("status", controller.updateStatus)
		idRoute.Patch("step-:step", controller.updateStep)
	})
}

// @Summary Получение сотрудника
// @Tags Сотрудники
// @Description Полная запись сотрудника с версией и etag
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Employee}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.GetEmployee(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	ctx.Set(fiber.HeaderETag, result.ETag)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Обновление сотрудника
// @Tags Сотрудники
// @Description Замена перечисленных секций, предусловие по заголовку If-Match
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   If-Match    		header		string	false	"expected etag"
// @Param   id          		path    string  true    "employee ID"
// @Param	body body	 employeeapimodels.UpdateEmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Employee}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	var payload employeeapimodels.UpdateEmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.UpdateEmployee(tenantID, id, payload, userID, ctx.Get(fiber.HeaderIfMatch))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	ctx.Set(fiber.HeaderETag, result.ETag)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Employee updated", result))
}

// @Summary Обновление статуса
// @Tags Сотрудники
// @Description Смена статуса занятости с причиной и датой вступления в силу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   If-Match    		header		string	false	"expected etag"
// @Param   id          		path    string  true    "employee ID"
// @Param	body body	 employeeapimodels.UpdateStatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Employee}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/status [patch]
func (c *employeeApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	var payload employeeapimodels.UpdateStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.UpdateEmployeeStatus(tenantID, id, payload.Status, userID, payload.Reason, payload.EffectiveDate, ctx.Get(fiber.HeaderIfMatch))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления статуса сотрудника")
	}
	ctx.Set(fiber.HeaderETag, result.ETag)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Status updated", result))
}

// @Summary Обновление секции сотрудника
// @Tags Сотрудники
// @Description Замена одной секции по номеру шага
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   If-Match    		header		string	false	"expected etag"
// @Param   id          		path    string  true    "employee ID"
// @Param   step          		path    int     true    "step number 1..6"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Employee}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/step-{step} [patch]
func (c *employeeApiController) updateStep(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	step, err := strconv.Atoi(ctx.Params("step"))
	if err != nil {
		return c.SendBadRequest(ctx, "не удалось распознать номер шага")
	}
	var payload employeeapimodels.StepSaveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	sectionKey := models.StepSection[step]
	var section map[string]interface{}
	if sectionKey == models.SectionDocuments {
		if len(payload.Documents) != 0 {
			section = map[string]interface{}{"documents": payload.Documents}
		}
	} else {
		section = payload.SectionPayload(sectionKey)
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.UpdateEmployeeStep(tenantID, id, step, section, userID, ctx.Get(fiber.HeaderIfMatch))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления секции сотрудника")
	}
	ctx.Set(fiber.HeaderETag, result.ETag)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Section updated", result))
}

// @Summary Проверка уникальности рабочей почты
// @Tags Сотрудники
// @Description Проверка значения среди существующих сотрудников тенанта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   value    			query		string	true	"value to check"
// @Param   exclude_id 			query		string	false	"employee ID to exclude"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ValidateResult}
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/validate/email [get]
func (c *employeeApiController) validateEmail(ctx *fiber.Ctx) error {
	return c.validateUnique(ctx, "employment.work_email")
}

// @Summary Проверка уникальности табельного номера
// @Tags Сотрудники
// @Description Проверка значения среди существующих сотрудников тенанта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   value    			query		string	true	"value to check"
// @Param   exclude_id 			query		string	false	"employee ID to exclude"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ValidateResult}
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/validate/code [get]
func (c *employeeApiController) validateCode(ctx *fiber.Ctx) error {
	return c.validateUnique(ctx, "employment.employee_code")
}

// @Summary Проверка уникальности имени пользователя
// @Tags Сотрудники
// @Description Проверка значения среди существующих сотрудников тенанта
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   value    			query		string	true	"value to check"
// @Param   exclude_id 			query		string	false	"employee ID to exclude"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ValidateResult}
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/validate/username [get]
func (c *employeeApiController) validateUsername(ctx *fiber.Ctx) error {
	return c.validateUnique(ctx, "employment.work_email_username")
}

func (c *employeeApiController) validateUnique(ctx *fiber.Ctx, fieldPath string) error {
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.ValidateUnique(tenantID, fieldPath, ctx.Query("value"), ctx.Query("exclude_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки уникальности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, result.Message, result))
}
