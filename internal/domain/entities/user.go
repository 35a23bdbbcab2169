package entities

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "Usuário"
)

type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Picture   string    `json:"picture,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSettings is the company data printed on quotes.
type UserSettings struct {
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	CompanyName    string `json:"company_name"`
	CompanyCNPJ    string `json:"company_cnpj"`
	CompanyAddress string `json:"company_address"`
	CompanyCity    string `json:"company_city"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
}

// Session is returned on login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Profile   UserProfile `json:"profile"`
}

// UserAccount is a profile with its credentials. It never leaves the
// persistence and auth layers.
type UserAccount struct {
	Profile      UserProfile
	PasswordHash string
	Settings     UserSettings
}
