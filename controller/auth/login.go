package auth

import (
	"context"
	"errors"
	"net/http"
	"taskserver/dto"
	"taskserver/model"
	"taskserver/services"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func LoginController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/api/users/login", func(c *gin.Context) {
		Login(c, firestoreClient)
	})
}

func Login(c *gin.Context, firestoreClient *firestore.Client) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mssg": err.Error()})
		return
	}

	ctx := context.Background()
	user, err := services.GetUserByEmail(ctx, firestoreClient, request.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mssg": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"mssg": "Incorrect password"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	issuedAt := now.Unix()
	expiresAt := now.Add(services.RefreshTokenTTL).Unix()

	refreshTokenData := model.RefreshTokenRecord{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if _, err := firestoreClient.Collection("RefreshTokens").Doc(user.UserID).Set(ctx, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"mssg": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mssg":  "Login Successfully",
		"email": user.Email,
		"user":  services.ToUserResponse(user),
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
