package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileRequest struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Role    string `json:"role"`
}

func (r ProfileRequest) ToEntity(id string) entities.UserProfile {
	return entities.UserProfile{
		ID:      id,
		Name:    strings.TrimSpace(r.Name),
		Picture: strings.TrimSpace(r.Picture),
		Role:    strings.TrimSpace(r.Role),
	}
}

type SettingsRequest struct {
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	CompanyName    string `json:"company_name"`
	CompanyCNPJ    string `json:"company_cnpj"`
	CompanyAddress string `json:"company_address"`
	CompanyCity    string `json:"company_city"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
}

func (r SettingsRequest) ToEntity() entities.UserSettings {
	return entities.UserSettings{
		FullName:       strings.TrimSpace(r.FullName),
		Role:           strings.TrimSpace(r.Role),
		CompanyName:    strings.TrimSpace(r.CompanyName),
		CompanyCNPJ:    strings.TrimSpace(r.CompanyCNPJ),
		CompanyAddress: strings.TrimSpace(r.CompanyAddress),
		CompanyCity:    strings.TrimSpace(r.CompanyCity),
		CompanyPhone:   strings.TrimSpace(r.CompanyPhone),
		CompanyEmail:   strings.TrimSpace(r.CompanyEmail),
	}
}
