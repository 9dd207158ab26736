package handler

import (
	"time"

	"github.com/podshelf/podshelf/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash
// never leaves the server.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// PlayerDTO is the JSON representation of the transport state.
type PlayerDTO struct {
	Current     *domain.Podcast `json:"current"`
	Playing     bool            `json:"playing"`
	CurrentTime float64         `json:"currentTime"`
	Duration    float64         `json:"duration"`
}

func toPlayerDTO(state domain.PlaybackState) PlayerDTO {
	return PlayerDTO{
		Current:     state.Current,
		Playing:     state.Playing,
		CurrentTime: state.CurrentTime,
		Duration:    state.TrackLength,
	}
}
