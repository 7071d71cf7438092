package dto

import (
	"time"

	authDomain "github.com/allisson/piiguard/internal/auth/domain"
	userDto "github.com/allisson/piiguard/internal/user/http/dto"
)

// LoginResponse carries the session token and the caller's masked profile.
type LoginResponse struct {
	Token     string               `json:"token"`
	Role      string               `json:"role"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      userDto.UserResponse `json:"user"`
}

// ToLoginResponse builds the login response from the issued token and masked user.
func ToLoginResponse(output *authDomain.LoginOutput, user userDto.UserResponse) LoginResponse {
	return LoginResponse{
		Token:     output.Token.Token,
		Role:      output.Principal.Role.String(),
		ExpiresAt: output.Token.ExpiresAt,
		User:      user,
	}
}
