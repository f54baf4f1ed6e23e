package connection

import (
	"log"

	"taskserver/controller/auth"
	"taskserver/controller/task"
	"taskserver/controller/user"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	fb, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	router := SetupRouter(fb)
	router.Run()
}

func SetupRouter(fb *firestore.Client) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"mssg": "Api is running!"})
	})

	auth.RegisterController(router, fb)
	auth.LoginController(router, fb)
	auth.TokenController(router, fb)

	user.UserController(router, fb)

	task.CreateTaskController(router, fb)
	task.GetTaskController(router, fb)
	task.UpdateTaskController(router, fb)
	task.DeleteTaskController(router, fb)
	task.BoardController(router, fb)

	return router
}
