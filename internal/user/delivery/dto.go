package delivery

import (
	"github.com/ofarias/inventario-api/internal/models"
)

type CreateUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUserDTO distinguishes absent fields (nil) from empty ones so a partial
// update only touches what the request actually carried.
type UpdateUserDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type UserDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// DeletedUserDTO is the reduced projection returned by DELETE: no role.
type DeletedUserDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	Success bool    `json:"success"`
	Data    UserDTO `json:"data"`
	Message string  `json:"message"`
}

type ListResponse struct {
	Success bool      `json:"success"`
	Data    []UserDTO `json:"data"`
	Count   int       `json:"count"`
	Message string    `json:"message"`
}

type CreatedResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    UserDTO `json:"data"`
}

type DeleteResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	DeletedUser DeletedUserDTO `json:"deleted_user"`
}

// ErrorResponse covers every error shape of the handler; optional fields only
// appear for the paths that set them.
type ErrorResponse struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Errors         []string `json:"errors,omitempty"`
	Error          string   `json:"error,omitempty"`
	Received       string   `json:"received,omitempty"`
	RequiredFields []string `json:"required_fields,omitempty"`
	AllowedFields  []string `json:"allowed_fields,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	Format         string   `json:"format,omitempty"`
	Email          string   `json:"email,omitempty"`
}
