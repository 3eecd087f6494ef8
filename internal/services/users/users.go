package users

import (
	"context"
	"errors"

	"github.com/Mayuresh351/bookReviewSystem/internal/auth"
	"github.com/Mayuresh351/bookReviewSystem/internal/mongodb"
)

// AddUser validates the signup request, hashes the password and stores the
// new user. The session token stays empty until the first login.
func AddUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (UserResponse, error) {
	if len(req.Username) < 3 || len(req.Username) > 30 {
		return UserResponse{}, ErrInvalidUsernameSize
	}
	if !IsValidUsername(req.Username) {
		return UserResponse{}, ErrInvalidUsername
	}

	taken, err := db.UserExists(ctx, req.Username)
	if err != nil {
		return UserResponse{}, err
	}
	if taken {
		return UserResponse{}, ErrUsernameTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func GetUserDbByUsername(db *mongodb.DB, ctx context.Context, username string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return mongodb.UserDb{}, ErrUserNotFound
		}
		return mongodb.UserDb{}, err
	}
	return userDb, nil
}

// StoreSessionToken records a freshly issued token on the user document.
// Whatever token the user held before stops being accepted from here on.
func StoreSessionToken(db *mongodb.DB, ctx context.Context, userId, token string) error {
	if err := db.SetUserToken(ctx, userId, token); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	allUsers, err := db.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(allUsers))
	for i, userDb := range allUsers {
		responses[i] = MapDbUserToApiUserResponse(userDb)
	}
	return responses, nil
}
