package task

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"taskserver/dto"
	"taskserver/middleware"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func UpdateTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.PATCH("/api/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTask(c, firestoreClient)
	})
}

func UpdateTask(c *gin.Context, firestoreClient *firestore.Client) {
	taskID := c.Param("id")

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": "Invalid input"})
		return
	}

	updates, err := buildTaskUpdates(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": err.Error()})
		return
	}

	ctx := context.Background()
	if request.UserIDs != nil {
		if err := services.UsersExist(ctx, firestoreClient, *request.UserIDs); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"mssg": "Unknown user in user_ids"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to check assignees"})
			return
		}
	}

	taskDocRef := firestoreClient.Collection("Tasks").Doc(taskID)
	err = firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		taskDoc, err := tx.Get(taskDocRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return services.ErrTaskNotFound
			}
			return err
		}
		if !taskDoc.Exists() {
			return services.ErrTaskNotFound
		}
		return tx.Update(taskDocRef, updates)
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to update task"})
		return
	}

	updated, err := services.GetTaskByID(ctx, firestoreClient, taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch updated task"})
		return
	}

	response, err := services.ExpandTask(ctx, firestoreClient, updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to resolve task assignees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mssg": "Task updated successfully",
		"task": response,
	})
}

// buildTaskUpdates turns a partial update request into Firestore update
// paths. Only fields present in the request are touched, plus the
// updatedat stamp.
func buildTaskUpdates(request dto.UpdateTaskRequest) ([]firestore.Update, error) {
	var updates []firestore.Update

	if request.Title != nil {
		title := strings.TrimSpace(*request.Title)
		if title == "" {
			return nil, errors.New("Title cannot be empty")
		}
		updates = append(updates, firestore.Update{Path: "title", Value: title})
	}

	if request.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *request.Description})
	}

	if request.DueDate != nil {
		parsed, err := time.Parse(time.RFC3339, *request.DueDate)
		if err != nil {
			return nil, errors.New("Invalid dueDate format")
		}
		updates = append(updates, firestore.Update{Path: "duedate", Value: parsed})
	}

	if request.Priority != nil {
		if !model.ValidPriority(*request.Priority) {
			return nil, errors.New("Priority must be 1 (High), 2 (Medium) or 3 (Low)")
		}
		updates = append(updates, firestore.Update{Path: "priority", Value: *request.Priority})
	}

	if request.Category != nil {
		if !model.ValidCategory(*request.Category) {
			return nil, errors.New("Category must be one of Work, Personal, Study, Others")
		}
		updates = append(updates, firestore.Update{Path: "category", Value: *request.Category})
	}

	if request.Status != nil {
		// Any reassignment is allowed, including reopening a
		// Completed task.
		if !model.ValidStatus(*request.Status) {
			return nil, errors.New("Status must be one of Pending, In Progress, Completed")
		}
		updates = append(updates, firestore.Update{Path: "status", Value: *request.Status})
	}

	if request.UserIDs != nil {
		updates = append(updates, firestore.Update{Path: "userids", Value: *request.UserIDs})
	}

	if len(updates) == 0 {
		return nil, errors.New("No data to update")
	}

	updates = append(updates, firestore.Update{Path: "updatedat", Value: time.Now()})
	return updates, nil
}
