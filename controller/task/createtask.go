package task

import (
	"context"
	"errors"
	"net/http"
	"taskserver/dto"
	"taskserver/middleware"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, firestoreClient)
	})
}

func CreateTask(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": "Invalid input"})
		return
	}

	newTask, err := taskFromCreateRequest(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": err.Error()})
		return
	}

	ctx := context.Background()
	if err := services.UsersExist(ctx, firestoreClient, newTask.UserIDs); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"mssg": "Unknown user in user_ids"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to check assignees"})
		return
	}

	taskid := uuid.New().String()
	now := time.Now()
	newTask.TaskID = taskid
	newTask.CreatedAt = now
	newTask.UpdatedAt = now

	if _, err := firestoreClient.Collection("Tasks").Doc(taskid).Set(ctx, newTask); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to create task"})
		return
	}

	response, err := services.ExpandTask(ctx, firestoreClient, newTask)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to load created task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mssg": "Task created successfully",
		"task": response,
	})
}

// taskFromCreateRequest validates the request against the closed enums
// and fills defaults (Pending status, Others category) for omitted
// fields. The document id and timestamps are assigned by the caller.
func taskFromCreateRequest(request dto.CreateTaskRequest) (model.Tasks, error) {
	if !model.ValidPriority(request.Priority) {
		return model.Tasks{}, errors.New("Priority must be 1 (High), 2 (Medium) or 3 (Low)")
	}

	status := request.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidStatus(status) {
		return model.Tasks{}, errors.New("Status must be one of Pending, In Progress, Completed")
	}

	category := request.Category
	if category == "" {
		category = "Others"
	}
	if !model.ValidCategory(category) {
		return model.Tasks{}, errors.New("Category must be one of Work, Personal, Study, Others")
	}

	var dueDate time.Time
	if request.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, request.DueDate)
		if err != nil {
			return model.Tasks{}, errors.New("Invalid dueDate format")
		}
		dueDate = parsed
	}

	userIDs := request.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}

	return model.Tasks{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     dueDate,
		Priority:    request.Priority,
		Category:    category,
		Status:      status,
		UserIDs:     userIDs,
	}, nil
}
