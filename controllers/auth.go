package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gamestore/database"
	"gamestore/logger"
	"gamestore/models"
	"gamestore/token"
)

// Auth signs a user in, creating the account on first login. The
// account profile starts with a zero balance and the user role.
func Auth(context *gin.Context) {
	var userData models.User
	if err := context.ShouldBindJSON(&userData); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Does not bind schema"})
		context.Abort()
		return
	}

	var user models.User
	getError := database.PostgresDB.Where("Email = ?", userData.Email).First(&user).Error

	if getError != nil {
		if !errors.Is(getError, gorm.ErrRecordNotFound) {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not make search result"})
			context.Abort()
			return
		}
		user = userData
		if hashedPassword, err := models.HashPassword(user.Password); err == nil {
			user.Password = hashedPassword
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not hash password"})
			context.Abort()
			return
		}
		if err := database.PostgresDB.Create(&user).Error; err != nil {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not create user"})
			context.Abort()
			return
		}
		logger.Log.Infow("Account created", "user_id", user.ID, "email", user.Email)
	} else {
		if !user.ValidatePassword(userData.Password) {
			context.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect password"})
			context.Abort()
			return
		}
	}

	if user.Banned {
		context.JSON(http.StatusForbidden, errorBody("Account is banned", models.ErrAccountBanned))
		context.Abort()
		return
	}

	signedToken, err := token.GenerateToken(user)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error generating tokens"})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, TokenResponse{SignedToken: signedToken})
}
