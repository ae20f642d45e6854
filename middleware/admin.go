package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/controllers"
	"gamestore/database"
	"gamestore/models"
)

// RequireAdmin gates the admin API on the account's role column.
// Runs after Authenticate.
func RequireAdmin(context *gin.Context) {

	userId, ok := context.Get("user_id")
	if !ok {
		context.JSON(http.StatusUnauthorized, controllers.ErrorResponse{Error: "Authorization failed"})
		context.Abort()
		return
	}

	var user models.User
	if res := database.PostgresDB.Where("ID = ?", userId).First(&user); res.Error != nil {
		context.JSON(http.StatusUnauthorized, controllers.ErrorResponse{Error: "Authorization failed"})
		context.Abort()
		return
	}
	if user.Banned || !user.IsAdmin() {
		context.JSON(http.StatusForbidden, controllers.ErrorResponse{Error: "Admin access required"})
		context.Abort()
		return
	}

	context.Next()
}
