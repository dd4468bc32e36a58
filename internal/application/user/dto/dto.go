// Package dto holds the transport representations of users. The password
// digest never leaves the application layer.
package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Area     string `json:"area" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Area     *string `json:"area"`
	Password *string `json:"password"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Area      string    `json:"area"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Area:      u.Area(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
