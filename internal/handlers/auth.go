// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/M00N69/supainspection/internal/auth"
	"github.com/M00N69/supainspection/internal/inspection"
	"github.com/M00N69/supainspection/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func Login(users inspection.UserDirectory, secret string, logg *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess := inspection.NewSession(users, nil, nil)
		user, err := sess.Authenticate(c.Request.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, inspection.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		case errors.Is(err, inspection.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		case errors.Is(err, inspection.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		case err != nil:
			logg.WithFields(logrus.Fields{"handler": "Login"}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}

		token, err := auth.GenerateToken(secret, user.ID)
		if err != nil {
			logg.WithFields(logrus.Fields{"handler": "Login"}).Error(err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.SetCookie("auth_token", token, 86400, "/", "", false, true)

		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User:  *user,
		})
	}
}

func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}
