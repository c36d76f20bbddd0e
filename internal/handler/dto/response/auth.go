package response

import "tablestay/internal/usecase"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromAuthorizedUser(au *usecase.AuthorizedUser) UserResponse {
	return UserResponse{
		ID:    au.ID.String(),
		Email: au.Email,
		Role:  au.Role,
	}
}
