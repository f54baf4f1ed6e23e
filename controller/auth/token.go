package auth

import (
	"context"
	"errors"
	"net/http"
	"taskserver/middleware"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TokenController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/users/token", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, firestoreClient)
	})
}

// RefreshAccessToken mints a new access token for a valid, unrevoked
// refresh token previously issued at login.
func RefreshAccessToken(c *gin.Context, firestoreClient *firestore.Client) {
	userID := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	doc, err := firestoreClient.Collection("RefreshTokens").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"mssg": "Refresh token not recognized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to look up refresh token"})
		return
	}

	var record model.RefreshTokenRecord
	if err := doc.DataTo(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to parse refresh token record"})
		return
	}

	if record.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"mssg": "Refresh token has been revoked"})
		return
	}

	if record.Expired(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"mssg": "Refresh token has expired"})
		return
	}

	if err := services.CompareRefreshToken(record.RefreshToken, refreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"mssg": "Refresh token does not match"})
		return
	}

	user, err := services.GetUserByID(ctx, firestoreClient, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to look up user"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mssg": "Token refreshed successfully",
		"token": gin.H{
			"accessToken": accessToken,
		},
	})
}
