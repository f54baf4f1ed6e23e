package task

import (
	"context"
	"errors"
	"net/http"
	"taskserver/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func GetTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.GET("/api/tasks", func(c *gin.Context) {
		ListTasks(c, firestoreClient)
	})
	router.GET("/api/tasks/:id", func(c *gin.Context) {
		GetTask(c, firestoreClient)
	})
}

func ListTasks(c *gin.Context, firestoreClient *firestore.Client) {
	ctx := context.Background()
	tasks, err := services.ListTasks(ctx, firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch tasks"})
		return
	}

	responses, err := services.ExpandTasks(ctx, firestoreClient, tasks)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to resolve task assignees"})
		return
	}

	c.JSON(http.StatusOK, responses)
}

func GetTask(c *gin.Context, firestoreClient *firestore.Client) {
	taskID := c.Param("id")

	ctx := context.Background()
	task, err := services.GetTaskByID(ctx, firestoreClient, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch task"})
		return
	}

	response, err := services.ExpandTask(ctx, firestoreClient, task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to resolve task assignees"})
		return
	}

	c.JSON(http.StatusOK, response)
}
