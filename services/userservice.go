package services

import (
	"context"
	"errors"
	"taskserver/dto"
	"taskserver/model"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUserNotFound = errors.New("user not found")

func UserExist(ctx context.Context, firestoreClient *firestore.Client, email string) (bool, error) {
	usersCollection := firestoreClient.Collection("Users")
	query := usersCollection.Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func GetUserByEmail(ctx context.Context, firestoreClient *firestore.Client, email string) (model.User, error) {
	usersCollection := firestoreClient.Collection("Users")
	query := usersCollection.Where("email", "==", email).Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return model.User{}, err
	}
	if len(docs) == 0 {
		return model.User{}, ErrUserNotFound
	}

	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func GetUserByID(ctx context.Context, firestoreClient *firestore.Client, userID string) (model.User, error) {
	doc, err := firestoreClient.Collection("Users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func ListUsers(ctx context.Context, firestoreClient *firestore.Client) ([]model.User, error) {
	iter := firestoreClient.Collection("Users").Documents(ctx)

	var users []model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// ToUserResponse strips the credential and formats timestamps for the
// wire.
func ToUserResponse(user model.User) dto.UserResponse {
	resp := dto.UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
	}
	if resp.Role == nil {
		resp.Role = []string{}
	}
	if !user.CreatedAt.IsZero() {
		resp.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
