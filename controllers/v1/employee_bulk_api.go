package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	employeehandler "hr-office-backend/lib/employee"
	xlsexport "hr-office-backend/lib/export/xls"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type employeeBulkApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeBulkApiRouters(app *fiber.App) {
	controller := employeeBulkApiController{}
	app.Route("bulk", func(router fiber.Router) {
		router.Post("export", controller.export)
		router.Post("export/xlsx", controller.exportXlsx)
		router.Post("assign-role", controller.assignRole)
		router.Post("suspend", controller.suspend)
		router.Post("terminate", controller.terminate)
		router.Post("activate-ess", controller.activateEss)
		router.Post("add-tag", controller.addTag)
	})
}

// @Summary Выгрузка реестра
// @Tags Массовые операции
// @Description Выгрузка отфильтрованного реестра в JSON
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.ExportData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ExportResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/export [post]
func (c *employeeBulkApiController) export(ctx *fiber.Ctx) error {
	var payload employeeapimodels.ExportData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.ExportEmployees(tenantID, payload.Filters, payload.Limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Выгрузка реестра в Excel
// @Tags Массовые операции
// @Description Выгрузка отфильтрованного реестра в xlsx файл
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.ExportData	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/export/xlsx [post]
func (c *employeeBulkApiController) exportXlsx(ctx *fiber.Ctx) error {
	var payload employeeapimodels.ExportData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.ExportEmployees(tenantID, payload.Filters, payload.Limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра")
	}
	data, err := xlsexport.Instance.ExportEmployeeList(result.Items)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования xlsx файла")
	}
	fileName := fmt.Sprintf("employees-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Массовое назначение роли
// @Tags Массовые операции
// @Description Назначение профиля доступа перечисленным сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.BulkAssignRoleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/assign-role [post]
func (c *employeeBulkApiController) assignRole(ctx *fiber.Ctx) error {
	var payload employeeapimodels.BulkAssignRoleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка валидации запроса")
	}
	result, err := employeehandler.Instance.BulkAssignRole(tenantID, payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового назначения роли")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Role assigned", result))
}

// @Summary Массовая приостановка
// @Tags Массовые операции
// @Description Приостановка занятости перечисленных сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.BulkSuspendData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/suspend [post]
func (c *employeeBulkApiController) suspend(ctx *fiber.Ctx) error {
	var payload employeeapimodels.BulkSuspendData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.BulkSuspend(tenantID, payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массовой приостановки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Employees suspended", result))
}

// @Summary Массовое увольнение
// @Tags Массовые операции
// @Description Прекращение занятости перечисленных сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.BulkTerminateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/terminate [post]
func (c *employeeBulkApiController) terminate(ctx *fiber.Ctx) error {
	var payload employeeapimodels.BulkTerminateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.BulkTerminate(tenantID, payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового увольнения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Employees terminated", result))
}

// @Summary Массовое включение ЛК
// @Tags Массовые операции
// @Description Включение или отключение личного кабинета сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.BulkEssData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/activate-ess [post]
func (c *employeeBulkApiController) activateEss(ctx *fiber.Ctx) error {
	var payload employeeapimodels.BulkEssData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.BulkActivateEss(tenantID, payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового включения ЛК")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "ESS access updated", result))
}

// @Summary Массовое добавление тега
// @Tags Массовые операции
// @Description Добавление тега перечисленным сотрудникам без дублей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.BulkTagData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/bulk/add-tag [post]
func (c *employeeBulkApiController) addTag(ctx *fiber.Ctx) error {
	var payload employeeapimodels.BulkTagData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка валидации запроса")
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.BulkAddTag(tenantID, payload, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового добавления тега")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Tag added", result))
}
