package task

import (
	"context"
	"net/http"
	"taskserver/middleware"
	"taskserver/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func BoardController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.GET("/api/board", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetBoard(c, firestoreClient)
	})
}

// GetBoard returns the caller's three task partitions, computed
// server-side from the full task set.
func GetBoard(c *gin.Context, firestoreClient *firestore.Client) {
	email := c.GetString("email")

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

	c.JSON(http.StatusOK, services.PartitionTasks(responses, email))
}
