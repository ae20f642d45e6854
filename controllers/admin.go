package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gamestore/database"
	"gamestore/logger"
	"gamestore/models"
	"gamestore/store"
)

// Admin CRUD over products, stock, and accounts. These are thin
// field-level wrappers; the only operation with an invariant is the
// balance top-up, which goes through store.Credit.

func CreateProduct(context *gin.Context) {
	var payload CreateProductPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	product := models.Product{
		Name:     payload.Name,
		Price:    payload.Price,
		Image:    payload.Image,
		Category: payload.Category,
	}
	for _, item := range payload.Stock {
		product.Stock = append(product.Stock, models.StockItem{Code: item.Code, Data: item.Data})
	}

	if err := database.PostgresDB.Create(&product).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &pgErr) && pgErr.Code == "23505") {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product already exists"})
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not create product"})
		}
		context.Abort()
		return
	}

	logger.Log.Infow("Product created", "product_id", product.ID, "name", product.Name)
	context.JSON(http.StatusOK, toProductSchema(product))
}

func DeleteProduct(context *gin.Context) {
	var product models.Product
	if res := database.PostgresDB.Where("ID = ?", context.Param("id")).First(&product); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find product"})
		context.Abort()
		return
	}

	// Remaining stock goes with the product; purchase history keeps its
	// own copies and is untouched.
	if err := database.PostgresDB.Select("Stock").Delete(&product).Error; err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not delete product"})
		context.Abort()
		return
	}

	logger.Log.Infow("Product deleted", "product_id", product.ID, "name", product.Name)
	context.JSON(http.StatusOK, gin.H{})
}

func AddStockItem(context *gin.Context) {
	var payload StockItemPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	var product models.Product
	if res := database.PostgresDB.Where("ID = ?", context.Param("id")).First(&product); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find product"})
		context.Abort()
		return
	}

	item := models.StockItem{ProductID: product.ID, Code: payload.Code, Data: payload.Data}
	if err := database.PostgresDB.Create(&item).Error; err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not add stock item"})
		context.Abort()
		return
	}

	logger.Log.Infow("Stock item added", "product_id", product.ID, "stock_item_id", item.ID)
	context.JSON(http.StatusOK, item)
}

func RemoveStockItem(context *gin.Context) {
	result := database.PostgresDB.
		Where("ID = ? AND product_id = ?", context.Param("stockId"), context.Param("id")).
		Delete(&models.StockItem{})
	if result.Error != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not remove stock item"})
		context.Abort()
		return
	}
	if result.RowsAffected == 0 {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find stock item"})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, gin.H{})
}

func GetUsers(context *gin.Context) {
	var users []models.User
	if err := database.PostgresDB.Order("id").Find(&users).Error; err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load users"})
		context.Abort()
		return
	}

	schemas := make([]UserSchema, 0, len(users))
	for _, u := range users {
		schemas = append(schemas, UserSchema{
			ID:        u.ID,
			Email:     u.Email,
			Balance:   u.Balance,
			Role:      u.Role,
			Banned:    u.Banned,
			CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	context.JSON(http.StatusOK, schemas)
}

// BanUser sets or clears the banned flag. A ban never deletes data.
func BanUser(context *gin.Context) {
	var payload BanPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	var user models.User
	if res := database.PostgresDB.Where("ID = ?", context.Param("id")).First(&user); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find user"})
		context.Abort()
		return
	}

	if err := database.PostgresDB.Model(&user).Update("Banned", *payload.Banned).Error; err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not update user"})
		context.Abort()
		return
	}

	logger.Log.Infow("User ban updated", "user_id", user.ID, "banned", *payload.Banned)
	context.JSON(http.StatusOK, gin.H{})
}

// TopUpBalance credits a user's balance through the wallet contract.
func TopUpBalance(context *gin.Context) {
	var payload TopUpPayload
	if err := context.ShouldBindJSON(&payload); err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		context.Abort()
		return
	}

	var user models.User
	if res := database.PostgresDB.Where("ID = ?", context.Param("id")).First(&user); res.Error != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find user"})
		context.Abort()
		return
	}

	newBalance, err := store.New(database.PostgresDB).Credit(user.ID, payload.Amount)
	if err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			context.JSON(http.StatusBadRequest, errorBody("Incorrect amount", err))
		} else {
			context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not update balance"})
		}
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, WalletSchema{Balance: newBalance})
}
