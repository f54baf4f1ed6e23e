package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"taskserver/dto"
	"taskserver/middleware"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Same shape the register validator enforces.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func UserController(router *gin.Engine, firestoreClient *firestore.Client) {
	// Reads stay open: the sign-in screen probes the list endpoint
	// before any credentials exist.
	router.GET("/api/users", func(c *gin.Context) {
		ListUsers(c, firestoreClient)
	})
	router.GET("/api/users/:id", func(c *gin.Context) {
		GetUser(c, firestoreClient)
	})

	router.PATCH("/api/users/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateUser(c, firestoreClient)
	})
	router.DELETE("/api/users/:id", middleware.AccessTokenMiddleware(), middleware.ManagerMiddleware(), func(c *gin.Context) {
		DeleteUser(c, firestoreClient)
	})
}

func ListUsers(c *gin.Context, firestoreClient *firestore.Client) {
	ctx := context.Background()
	users, err := services.ListUsers(ctx, firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch users"})
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, services.ToUserResponse(user))
	}
	c.JSON(http.StatusOK, responses)
}

func GetUser(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("id")

	ctx := context.Background()
	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, services.ToUserResponse(user))
}

func UpdateUser(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("id")

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": "Invalid request format"})
		return
	}

	// Normalize before validation so the uniqueness check below runs
	// against the value that gets stored.
	request.Email = strings.TrimSpace(request.Email)

	updates, err := buildUserUpdates(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": err.Error()})
		return
	}

	ctx := context.Background()

	// Changing the email must not collide with another account.
	if request.Email != "" {
		existing, err := services.GetUserByEmail(ctx, firestoreClient, request.Email)
		if err != nil && !errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to check existing email"})
			return
		}
		if err == nil && existing.UserID != userID {
			c.JSON(http.StatusBadRequest, gin.H{"mssg": "Email is already registered"})
			return
		}
	}

	userDocRef := firestoreClient.Collection("Users").Doc(userID)
	err = firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(userDocRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return services.ErrUserNotFound
			}
			return err
		}
		if !userDoc.Exists() {
			return services.ErrUserNotFound
		}
		return tx.Update(userDocRef, updates)
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to update user"})
		return
	}

	updated, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch updated user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mssg": "User updated successfully",
		"user": services.ToUserResponse(updated),
	})
}

// buildUserUpdates turns a partial update request into Firestore update
// paths. An empty password means "leave unchanged"; it is hashed here
// when present.
func buildUserUpdates(request dto.UpdateUserRequest) ([]firestore.Update, error) {
	var updates []firestore.Update

	if request.Email != "" {
		if !emailRegex.MatchString(request.Email) {
			return nil, errors.New("invalid email format")
		}
		updates = append(updates, firestore.Update{Path: "email", Value: request.Email})
	}

	if request.Role != nil {
		if !model.ValidRoles(request.Role) {
			return nil, errors.New("Role must be one or more of Manager, Employee")
		}
		updates = append(updates, firestore.Update{Path: "role", Value: request.Role})
	}

	if request.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to process password")
		}
		updates = append(updates, firestore.Update{Path: "password", Value: string(hashedPassword)})
	}

	if len(updates) == 0 {
		return nil, errors.New("No data to update")
	}
	return updates, nil
}

// DeleteUser removes the account and strips its id from every task's
// assignee list so reads never surface a dangling reference.
func DeleteUser(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.Param("id")
	ctx := context.Background()

	userDocRef := firestoreClient.Collection("Users").Doc(userID)
	if _, err := userDocRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to fetch user"})
		return
	}

	// Cascade: unassign the user from every task referencing them.
	tasksQuery := firestoreClient.Collection("Tasks").Where("userids", "array-contains", userID)
	iter := tasksQuery.Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to check task assignments"})
			return
		}
		_, err = doc.Ref.Update(ctx, []firestore.Update{
			{Path: "userids", Value: firestore.ArrayRemove(userID)},
			{Path: "updatedat", Value: time.Now()},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to unassign user from tasks"})
			return
		}
	}

	// Revoke the session; missing record is fine, anything else is
	// logged and the delete proceeds.
	if _, err := firestoreClient.Collection("RefreshTokens").Doc(userID).Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
		log.Printf("failed to delete refresh token for user %s: %v", userID, err)
	}

	if _, err := userDocRef.Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mssg": "User deleted successfully"})
}
