package apimodels

import (
	"hr-office-backend/models"
)

type Response struct {
	Success    bool                `json:"success"`             //результат обработки
	Message    string              `json:"message,omitempty"`   //сообщение для клиента
	StatusCode int                 `json:"status_code"`         //http статус ответа
	Data       interface{}         `json:"data,omitempty"`      //данные ответа
	Error      *models.DomainError `json:"error,omitempty"`     //структурная ошибка
}

func NewResponse(statusCode int, message string, data interface{}) Response {
	return Response{
		Success:    true,
		Message:    message,
		StatusCode: statusCode,
		Data:       data,
	}
}

func NewError(domainErr *models.DomainError) Response {
	return Response{
		Success:    false,
		Message:    domainErr.Message,
		StatusCode: domainErr.StatusCode,
		Error:      domainErr,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`  // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 20
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
