package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamestore/database"
	"gamestore/models"
	"gamestore/store"
)

// BuyProduct runs the purchase transaction for the authenticated user
// and returns the receipt with the allocated credential unit.
func BuyProduct(context *gin.Context) {

	userId, ok := currentUserID(context)
	if !ok {
		context.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization failed"})
		context.Abort()
		return
	}

	productId, err := strconv.ParseUint(context.Param("product"), 10, 64)
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid product id"})
		context.Abort()
		return
	}

	receipt, err := store.New(database.PostgresDB).Buy(userId, uint(productId))
	if err != nil {
		status := http.StatusBadRequest
		message := "Could not complete the purchase"
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			status, message = http.StatusUnauthorized, "Authorization failed"
		case errors.Is(err, models.ErrAccountBanned):
			status, message = http.StatusForbidden, "Account is banned"
		case errors.Is(err, models.ErrProductNotFound):
			message = "Could not find product"
		case errors.Is(err, models.ErrOutOfStock):
			message = "Product is out of stock"
		case errors.Is(err, models.ErrInsufficientFunds):
			message = "Insufficient funds to complete the transaction"
		default:
			status = http.StatusInternalServerError
		}
		context.JSON(status, errorBody(message, err))
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, receipt)
}

// GetPurchases lists the authenticated user's purchase history,
// newest first.
func GetPurchases(context *gin.Context) {

	userId, ok := currentUserID(context)
	if !ok {
		context.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization failed"})
		context.Abort()
		return
	}

	purchases, err := store.New(database.PostgresDB).History(userId)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load purchases"})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, purchases)
}

func currentUserID(context *gin.Context) (uint, bool) {
	userId, ok := context.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := userId.(uint)
	return id, ok
}
