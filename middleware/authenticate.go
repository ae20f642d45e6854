package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/controllers"
	"gamestore/token"
)

func Authenticate(context *gin.Context) {

	clientToken := context.Request.Header.Get("Authorization")
	if clientToken == "" {
		context.JSON(http.StatusUnauthorized,
			controllers.ErrorResponse{Error: "No authorization header provided"})
		context.Abort()
		return
	}
	claims, err := token.ValidateToken(clientToken)
	if err != nil {
		context.JSON(http.StatusUnauthorized, controllers.ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	context.Set("user_id", claims.UserID)
	context.Next()
}
