package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
)

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Company:  strings.TrimSpace(r.Company),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Document: strings.TrimSpace(r.Document),
		Address:  strings.TrimSpace(r.Address),
	}
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed canceled"`
}
