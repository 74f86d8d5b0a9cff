package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	uploadhandler "hr-office-backend/lib/upload"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type employeeUploadApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeUploadApiRouters(app *fiber.App) {
	controller := employeeUploadApiController{}
	app.Route("uploads", func(router fiber.Router) {
		router.Post("init", controller.initUpload)
		router.Post(":upload_id/complete", controller.completeUpload)
	})
}

// @Summary Разрешение на загрузку файла
// @Tags Файлы
// @Description Выдача подписанной ссылки, файл уходит в blob-хранилище напрямую
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.UploadInitData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.UploadInitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/uploads/init [post]
func (c *employeeUploadApiController) initUpload(ctx *fiber.Ctx) error {
	var payload employeeapimodels.UploadInitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := uploadhandler.Instance.InitUpload(ctx.UserContext(), tenantID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выдачи разрешения на загрузку")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Upload authorized", result))
}

// @Summary Подтверждение загрузки файла
// @Tags Файлы
// @Description Фиксация завершённой загрузки и итогового адреса файла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   upload_id          	path    string  true    "upload ID"
// @Param	body body	 employeeapimodels.UploadCompleteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.UploadCompleteResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/uploads/{upload_id}/complete [post]
func (c *employeeUploadApiController) completeUpload(ctx *fiber.Ctx) error {
	var payload employeeapimodels.UploadCompleteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	result, err := uploadhandler.Instance.CompleteUpload(tenantID, ctx.Params("upload_id"), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подтверждения загрузки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Upload completed", result))
}
