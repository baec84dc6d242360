package models

import "github.com/bookcore/appointment-service/internal/domain"

// ServiceResponse is the outward representation of a bookable service.
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      *int64 `json:"priceCents,omitempty"`
}

// ServiceListResponse wraps a list of services.
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// StaffResponse is the outward representation of a staff member.
type StaffResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffListResponse wraps the staff assigned to a service.
type StaffListResponse struct {
	ServiceID int64            `json:"serviceId"`
	Staff     []*StaffResponse `json:"staff"`
	Total     int              `json:"total"`
}

// FromDomainServices converts service rules to the list response.
func FromDomainServices(services []domain.ServiceRules) *ServiceListResponse {
	list := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		list = append(list, &ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			PriceCents:      s.PriceCents,
		})
	}
	return &ServiceListResponse{Services: list, Total: len(list)}
}

// FromDomainStaff converts staff rules to the list response.
func FromDomainStaff(serviceID int64, staff []domain.StaffRules) *StaffListResponse {
	list := make([]*StaffResponse, 0, len(staff))
	for _, m := range staff {
		list = append(list, &StaffResponse{ID: m.ID, Name: m.Name})
	}
	return &StaffListResponse{ServiceID: serviceID, Staff: list, Total: len(list)}
}
