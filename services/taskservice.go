package services

import (
	"context"
	"errors"
	"taskserver/dto"
	"taskserver/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrTaskNotFound = errors.New("task not found")

func GetTaskByID(ctx context.Context, firestoreClient *firestore.Client, taskID string) (model.Tasks, error) {
	doc, err := firestoreClient.Collection("Tasks").Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Tasks{}, ErrTaskNotFound
		}
		return model.Tasks{}, err
	}

	var task model.Tasks
	if err := doc.DataTo(&task); err != nil {
		return model.Tasks{}, err
	}
	return task, nil
}

func ListTasks(ctx context.Context, firestoreClient *firestore.Client) ([]model.Tasks, error) {
	iter := firestoreClient.Collection("Tasks").Documents(ctx)

	var tasks []model.Tasks
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var task model.Tasks
		if err := doc.DataTo(&task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UsersExist verifies every id references an existing user document.
// Returns ErrUserNotFound on the first missing id.
func UsersExist(ctx context.Context, firestoreClient *firestore.Client, userIDs []string) error {
	for _, id := range userIDs {
		if _, err := GetUserByID(ctx, firestoreClient, id); err != nil {
			return err
		}
	}
	return nil
}

// ExpandTask resolves the task's assignee ids into full user objects.
// Ids whose user document has since disappeared are skipped rather than
// failing the read.
func ExpandTask(ctx context.Context, firestoreClient *firestore.Client, task model.Tasks) (dto.TaskResponse, error) {
	users := make([]dto.UserResponse, 0, len(task.UserIDs))
	for _, id := range task.UserIDs {
		user, err := GetUserByID(ctx, firestoreClient, id)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				continue
			}
			return dto.TaskResponse{}, err
		}
		users = append(users, ToUserResponse(user))
	}
	return taskResponse(task, users), nil
}

// ExpandTasks resolves assignees for a full task list with a single
// pass over the Users collection.
func ExpandTasks(ctx context.Context, firestoreClient *firestore.Client, tasks []model.Tasks) ([]dto.TaskResponse, error) {
	allUsers, err := ListUsers(ctx, firestoreClient)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.User, len(allUsers))
	for _, u := range allUsers {
		byID[u.UserID] = u
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		users := make([]dto.UserResponse, 0, len(task.UserIDs))
		for _, id := range task.UserIDs {
			if user, ok := byID[id]; ok {
				users = append(users, ToUserResponse(user))
			}
		}
		responses = append(responses, taskResponse(task, users))
	}
	return responses, nil
}

func taskResponse(task model.Tasks, users []dto.UserResponse) dto.TaskResponse {
	return dto.TaskResponse{
		TaskID:      task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Category:    task.Category,
		Status:      task.Status,
		Users:       users,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
