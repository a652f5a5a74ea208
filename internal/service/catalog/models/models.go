package models

import "github.com/m04kA/LV-BookingService/internal/domain"

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string `json:"name"`
	BasePrice       int64  `json:"basePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
}

// UpdateServiceRequest запрос на изменение услуги
// Active управляет мягким выключением: false убирает услугу из активного
// каталога, не трогая историю
type UpdateServiceRequest struct {
	Name            string `json:"name"`
	BasePrice       int64  `json:"basePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
	Active          *bool  `json:"active,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	BasePrice       int64  `json:"basePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	Category        string `json:"category"`
	Active          bool   `json:"active"`
}

// ServiceListResponse ответ со списком услуг (в порядке добавления в каталог)
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(item *domain.ServiceItem) *ServiceResponse {
	if item == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              item.ID,
		Name:            item.Name,
		BasePrice:       item.BasePrice,
		DurationMinutes: item.DurationMinutes,
		Category:        item.Category,
		Active:          item.Active,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(items []*domain.ServiceItem) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(items)),
	}

	for _, item := range items {
		if itemResp := FromDomainService(item); itemResp != nil {
			resp.Services = append(resp.Services, *itemResp)
		}
	}

	return resp
}
