package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"gamestore/config"
	"gamestore/controllers"
	"gamestore/database"
	"gamestore/logger"
	"gamestore/middleware"
	"gamestore/models"
)

func initRouter(api *gin.RouterGroup) {

	api.GET("/healthcheck", func(c *gin.Context) {})
	api.POST("/auth", controllers.Auth)
	api.Use(middleware.Authenticate)
	{
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.GET("/buy/:product", controllers.BuyProduct)
		api.GET("/wallet", controllers.GetWallet)
		api.GET("/purchases", controllers.GetPurchases)

		admin := api.Group("/admin", middleware.RequireAdmin)
		{
			admin.POST("/products", controllers.CreateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)
			admin.POST("/products/:id/stock", controllers.AddStockItem)
			admin.DELETE("/products/:id/stock/:stockId", controllers.RemoveStockItem)
			admin.GET("/users", controllers.GetUsers)
			admin.POST("/users/:id/ban", controllers.BanUser)
			admin.POST("/users/:id/balance", controllers.TopUpBalance)
		}
	}
}

func MigrateDB() error {
	if err := database.PostgresDB.AutoMigrate(
		&models.User{}, &models.Product{}, &models.StockItem{}, &models.Purchase{}); err != nil {
		return err
	}
	return nil
}

// SeedAdmin creates the administrator account on first startup.
func SeedAdmin() error {
	var admin models.User
	err := database.PostgresDB.Where("Email = ?", config.Cfg.Admin.Email).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := models.HashPassword(config.Cfg.Admin.Password)
	if err != nil {
		return err
	}
	admin = models.User{
		Email:    config.Cfg.Admin.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := database.PostgresDB.Create(&admin).Error; err != nil {
		return err
	}
	logger.Log.Infow("Admin account seeded", "email", admin.Email)
	return nil
}

// LoadProducts seeds the catalog from data/products.json. Already
// existing products are left alone.
func LoadProducts() error {
	content, readErr := os.ReadFile("data/products.json")
	if readErr != nil {
		if errors.Is(readErr, os.ErrNotExist) {
			logger.Log.Warnw("No seed catalog found, skipping", "path", "data/products.json")
			return nil
		}
		return readErr
	}
	var products []models.Product
	if err := json.Unmarshal(content, &products); err != nil {
		return err
	}
	for _, product := range products {
		if err := database.PostgresDB.Create(&product).Error; err != nil {
			var pgErr *pgconn.PgError
			if !errors.Is(err, gorm.ErrDuplicatedKey) && (errors.As(err, &pgErr) && pgErr.Code != "23505") {
				return err
			}
		}
	}
	return nil
}

func main() {
	logger.InitLogger()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Log.Warnw("No .env file found, using existing environment variables", "error", err)
	}
	if err := config.Cfg.Init(); err != nil {
		logger.Log.Fatalw("Failed to load configuration", "error", err)
	}
	if err := database.InitDatabase(); err != nil {
		logger.Log.Fatalw("Failed to initialize database", "error", err)
	}
	if err := MigrateDB(); err != nil {
		logger.Log.Fatalw("Failed to migrate database", "error", err)
	}
	if err := SeedAdmin(); err != nil {
		logger.Log.Fatalw("Failed to seed admin account", "error", err)
	}
	if err := LoadProducts(); err != nil {
		logger.Log.Fatalw("Failed to load seed catalog", "error", err)
	}

	r := gin.Default()
	api := r.Group("/api")
	initRouter(api)

	if err := r.Run(fmt.Sprintf(":%s", config.Cfg.Server.Port)); err != nil {
		logger.Log.Fatalw("Failed to start Gin server", "error", err)
	}
}
