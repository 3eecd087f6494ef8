package users

import (
	"github.com/Mayuresh351/bookReviewSystem/internal/auth"
	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
)

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:        userDb.Id,
		Username:  userDb.Username,
		Name:      userDb.Name,
		CreatedAt: userDb.CreatedAt,
		UpdatedAt: userDb.UpdatedAt,
	}
}

func MapDbUserToApiLoginResponse(userDb mongodb.UserDb, token string) auth.LoginResponse {
	return auth.LoginResponse{
		Id:          userDb.Id,
		Username:    userDb.Username,
		Name:        userDb.Name,
		AccessToken: token,
	}
}
