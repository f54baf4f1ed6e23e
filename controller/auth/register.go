package auth

import (
	"context"
	"net/http"
	"taskserver/dto"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func RegisterController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/users/register", func(c *gin.Context) {
		Register(c, firestoreClient)
	})
}

func Register(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": err.Error()})
		return
	}

	if !model.ValidRoles(request.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": "Role must be one or more of Manager, Employee"})
		return
	}

	ctx := context.Background()
	exists, err := services.UserExist(ctx, firestoreClient, request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to check existing email"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": "Email is already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to hash password"})
		return
	}

	docid := uuid.New().String()

	newUser := model.User{
		UserID:    docid,
		Email:     request.Email,
		Password:  string(hashedPassword),
		Role:      request.Role,
		CreatedAt: time.Now(),
	}

	if _, err := firestoreClient.Collection("Users").Doc(docid).Set(ctx, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mssg": "User registered successfully",
		"user": services.ToUserResponse(newUser),
	})
}
