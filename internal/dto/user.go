package dto

import (
	"github.com/yukikurage/smart-workspace/internal/models"
)

// UserDTO represents a user in API responses. The password never leaves
// the models layer.
type UserDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.DisplayName(),
	}
}
