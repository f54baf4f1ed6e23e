package task

import (
	"context"
	"net/http"
	"taskserver/middleware"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func DeleteTaskController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.DELETE("/api/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, firestoreClient)
	})
}

func DeleteTask(c *gin.Context, firestoreClient *firestore.Client) {
	taskID := c.Param("id")
	ctx := context.Background()

	taskDocRef := firestoreClient.Collection("Tasks").Doc(taskID)
	if _, err := taskDocRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch task"})
		return
	}

	if _, err := taskDocRef.Delete(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mssg": "Task deleted successfully"})
}
