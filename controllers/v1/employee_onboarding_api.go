package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	employeehandler "hr-office-backend/lib/employee"
	"hr-office-backend/middleware"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
	employeeapimodels "hr-office-backend/models/api/employee"
)

type employeeOnboardingApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeOnboardingApiRouters(app *fiber.App) {
	controller := employeeOnboardingApiController{}
	app.Post("step-1", controller.savePersonal)
	app.Post("step-2", controller.saveEmployment)
	app.Post("step-3", controller.saveCompensation)
	app.Post("step-4", controller.saveBankTax)
	app.Post("step-5", controller.saveDocuments)
	app.Post("step-6", controller.saveEmergencyAddress)
	app.Post("complete", controller.complete)
	app.Route("drafts", func(router fiber.Router) {
		router.Get("", controller.listDrafts)
		router.Route(":draft_id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getDraft)
			idRoute.Delete("", controller.deleteDraft)
		})
	})
}

// @Summary Шаг 1 - персональные данные
// @Tags Онбординг
// @Description Сохранение персональных данных, при пустом draft_id создаётся новый черновик
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-1 [post]
func (c *employeeOnboardingApiController) savePersonal(ctx *fiber.Ctx) error {
	var payload employeeapimodels.StepSaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.SaveStepOne(tenantID, userID, payload.SectionPayload(models.SectionPersonal), payload.DraftID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения персональных данных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Saved personal info", result))
}

// @Summary Шаг 2 - данные о занятости
// @Tags Онбординг
// @Description Сохранение данных о занятости
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-2 [post]
func (c *employeeOnboardingApiController) saveEmployment(ctx *fiber.Ctx) error {
	return c.saveSection(ctx, models.SectionEmployment, 2)
}

// @Summary Шаг 3 - компенсация
// @Tags Онбординг
// @Description Сохранение данных о компенсации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-3 [post]
func (c *employeeOnboardingApiController) saveCompensation(ctx *fiber.Ctx) error {
	return c.saveSection(ctx, models.SectionCompensation, 3)
}

// @Summary Шаг 4 - банк и налоги
// @Tags Онбординг
// @Description Сохранение банковских и налоговых реквизитов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-4 [post]
func (c *employeeOnboardingApiController) saveBankTax(ctx *fiber.Ctx) error {
	return c.saveSection(ctx, models.SectionBankTax, 4)
}

// @Summary Шаг 5 - документы
// @Tags Онбординг
// @Description Сохранение списка документов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-5 [post]
func (c *employeeOnboardingApiController) saveDocuments(ctx *fiber.Ctx) error {
	var payload employeeapimodels.StepSaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.SaveDocuments(tenantID, userID, payload.DraftID, payload.Documents)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Saved section documents", result))
}

// @Summary Шаг 6 - экстренный контакт и адрес
// @Tags Онбординг
// @Description Сохранение экстренного контакта и адреса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.StepSaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.StepSaveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/step-6 [post]
func (c *employeeOnboardingApiController) saveEmergencyAddress(ctx *fiber.Ctx) error {
	return c.saveSection(ctx, models.SectionEmergencyAddress, 6)
}

func (c *employeeOnboardingApiController) saveSection(ctx *fiber.Ctx, sectionKey string, step int) error {
	var payload employeeapimodels.StepSaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	var nextStep *int
	if step < 6 {
		next := step + 1
		nextStep = &next
	}
	result, err := employeehandler.Instance.SaveStep(tenantID, userID, payload.DraftID, sectionKey, payload.SectionPayload(sectionKey), step, nextStep)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения секции черновика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Saved section "+sectionKey, result))
}

// @Summary Финализация черновика
// @Tags Онбординг
// @Description Создание записи сотрудника из полностью заполненного черновика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.CompleteData	true	"request body"
// @Success 201 {object} apimodels.Response{data=employeeapimodels.CompleteResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/complete [post]
func (c *employeeOnboardingApiController) complete(ctx *fiber.Ctx) error {
	var payload employeeapimodels.CompleteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err.Error())
	}
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.CompleteEmployee(tenantID, userID, payload.DraftID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка финализации черновика")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(fiber.StatusCreated, "Employee created successfully", result))
}

// @Summary Список черновиков
// @Tags Онбординг
// @Description Незавершённые черновики текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.DraftListItem}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/drafts [get]
func (c *employeeOnboardingApiController) listDrafts(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	userID := middleware.GetUserID(ctx)
	result, err := employeehandler.Instance.ListDrafts(tenantID, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка черновиков")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Получение черновика
// @Tags Онбординг
// @Description Черновик со всеми сохранёнными секциями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   draft_id          	path    string  true    "draft ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.EmployeeDraft}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/drafts/{draft_id} [get]
func (c *employeeOnboardingApiController) getDraft(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	result, err := employeehandler.Instance.GetDraft(tenantID, ctx.Params("draft_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения черновика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "", result))
}

// @Summary Удаление черновика
// @Tags Онбординг
// @Description Удаление незавершённого черновика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   draft_id          	path    string  true    "draft ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/drafts/{draft_id} [delete]
func (c *employeeOnboardingApiController) deleteDraft(ctx *fiber.Ctx) error {
	tenantID := middleware.GetTenantID(ctx)
	err := employeehandler.Instance.DeleteDraft(tenantID, ctx.Params("draft_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления черновика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.StatusOK, "Draft deleted", nil))
}
