package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/schedule"
)

type AppointmentRequest struct {
	Title        string `json:"title" binding:"required"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Duration     int    `json:"duration" binding:"gte=0"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	Responsible  string `json:"responsible"`
	Location     string `json:"location"`
}

func (r AppointmentRequest) ToEntity(id string) entities.Appointment {
	return entities.Appointment{
		ID:           id,
		Title:        strings.TrimSpace(r.Title),
		CustomerID:   strings.TrimSpace(r.CustomerID),
		CustomerName: strings.TrimSpace(r.CustomerName),
		Date:         strings.TrimSpace(r.Date),
		Time:         strings.TrimSpace(r.Time),
		Duration:     r.Duration,
		Status:       entities.AppointmentStatus(strings.TrimSpace(r.Status)),
		Description:  r.Description,
		Responsible:  strings.TrimSpace(r.Responsible),
		Location:     strings.TrimSpace(r.Location),
	}
}

type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentQuery holds the list, calendar and export filters.
type AppointmentQuery struct {
	Search      string `form:"search"`
	Status      string `form:"status"`
	Responsible string `form:"responsible"`
	Month       string `form:"month"`
	Limit       int    `form:"limit"`
}

func (q AppointmentQuery) ToFilter() schedule.Filter {
	return schedule.Filter{
		Search:      strings.TrimSpace(q.Search),
		Status:      strings.TrimSpace(q.Status),
		Responsible: strings.TrimSpace(q.Responsible),
	}
}
