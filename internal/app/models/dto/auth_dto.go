package dto

import (
	"time"

	"github.com/kaanyld/tutorhub/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterParentRequest represents a parent registration request
type RegisterParentRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// RegisterTutorRequest represents a tutor registration request
type RegisterTutorRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=8"`
	FirstName  string   `json:"firstName" binding:"required"`
	LastName   string   `json:"lastName" binding:"required"`
	Phone      string   `json:"phone"`
	Subjects   []string `json:"subjects" binding:"required,min=1"`
	HourlyRate float64  `json:"hourlyRate" binding:"required,gt=0"`
	Bio        string   `json:"bio"`
}

// UpdateProfileRequest represents profile update data. Nil fields are left
// untouched on the account.
type UpdateProfileRequest struct {
	FirstName  *string   `json:"firstName,omitempty"`
	LastName   *string   `json:"lastName,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Subjects   *[]string `json:"subjects,omitempty"`
	HourlyRate *float64  `json:"hourlyRate,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AccountResponse represents account information without credentials
type AccountResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Role       models.RoleType `json:"role"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Phone      string          `json:"phone,omitempty"`
	Subjects   []string        `json:"subjects,omitempty"`
	HourlyRate float64         `json:"hourlyRate,omitempty"`
	Bio        string          `json:"bio,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToAccountResponse maps an account to its public representation
func ToAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		Email:      a.Email,
		Role:       a.Role,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Phone:      a.Phone,
		Subjects:   a.Subjects,
		HourlyRate: a.HourlyRate,
		Bio:        a.Bio,
		CreatedAt:  a.CreatedAt,
	}
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Account AccountResponse `json:"account"`
}
