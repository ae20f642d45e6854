package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/database"
	"gamestore/models"
	"gamestore/store"
)

// GetWallet returns the authenticated user's balance.
func GetWallet(context *gin.Context) {

	userId, ok := currentUserID(context)
	if !ok {
		context.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization failed"})
		context.Abort()
		return
	}

	balance, err := store.New(database.PostgresDB).Balance(userId)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			context.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization failed"})
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load balance"})
		}
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, WalletSchema{Balance: balance})
}
