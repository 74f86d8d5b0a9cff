package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	masterdictprovider "hr-office-backend/lib/dicts/master"
	employeehandler "hr-office-backend/lib/employee"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type employeeListApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeListApiRouters(app *fiber.App) {
	controller := employeeListApiController{}
	app.Get("", controller.listQuery)
	app.Post("list", controller.list)
	app.Get("filter-options", controller.filterOptions)
	app.Get("lookup/:resource", controller.lookup)
}

// @Summary Список сотрудников (query)
// @Tags Сотрудники
// @Description Страница реестра, фильтры передаются query параметрами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page    			query		int 	false	"page"
// @Param   limit    			query		int 	false	"limit"
// @Param   search    			query		string	false	"search"
// @Param   status    			query		string	false	"status"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ListResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeListApiController) listQuery(ctx *fiber.Ctx) error {
	var payload employeeapimodels.ListFilter
	if err := ctx.QueryParser(&payload); err != nil {
		return c.SendBadRequest(ctx, "не удалось распознать параметры запроса")
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.ListEmployees(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Страница реестра с фильтрами и сортировкой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.ListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ListResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [post]
func (c *employeeListApiController) list(ctx *fiber.Ctx) error {
	var payload employeeapimodels.ListFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.ListEmployees(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Значения фильтров
// @Tags Сотрудники
// @Description Справочники и теги для панели фильтров реестра
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.FilterOptions}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/filter-options [get]
func (c *employeeListApiController) filterOptions(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.GetFilterOptions(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения значений фильтров")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Справочник
// @Tags Сотрудники
// @Description Справочные данные для форм: departments, designations, locations, roles, employees, document-categories, permission-profiles
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   resource      		path    string  true    "resource name"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.LookupItem}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/lookup/{resource} [get]
func (c *employeeListApiController) lookup(ctx *fiber.Ctx) error {
	resource := ctx.Params("resource")
	if static, found := masterdictprovider.Instance.GetStaticLookup(resource); found {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", static))
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := masterdictprovider.Instance.GetLookup(tenantID, resource)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения справочника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}
