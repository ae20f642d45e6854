package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gamestore/config"
	"gamestore/logger"
)

var PostgresDB *gorm.DB

func InitDatabase() error {

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.Cfg.Database.Host,
		config.Cfg.Database.Username,
		config.Cfg.Database.Password,
		config.Cfg.Database.DatabaseName,
		config.Cfg.Database.Port)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	PostgresDB = db
	logger.Log.Infow("Database connection established",
		"host", config.Cfg.Database.Host, "database", config.Cfg.Database.DatabaseName)
	return nil
}
