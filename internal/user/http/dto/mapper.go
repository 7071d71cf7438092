package dto

import (
	"github.com/allisson/piiguard/internal/user/domain"
	"github.com/allisson/piiguard/internal/user/usecase"
)

// ToCreateUserInput converts a CreateUserRequest DTO to use case input.
func ToCreateUserInput(req CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		ID:       req.ID,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	}
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to use case input.
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     req.Role,
	}
}

// ToUserResponse converts a masked user view to a UserResponse DTO.
func ToUserResponse(view *domain.UserView) UserResponse {
	return UserResponse{
		ID:        view.ID,
		Email:     view.Email,
		FullName:  view.FullName,
		Role:      view.Role.String(),
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

// ToListUsersResponse converts masked user views to a list response.
func ToListUsersResponse(views []*domain.UserView) ListUsersResponse {
	data := make([]UserResponse, 0, len(views))
	for _, view := range views {
		data = append(data, ToUserResponse(view))
	}
	return ListUsersResponse{Data: data}
}
