package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ID       uint        `gorm:"primary_key" autoIncrement:"true"`
	Name     string      `gorm:"index:idx_product_name;unique;not null;" json:"name" binding:"required"`
	Price    float64     `gorm:"check:price >= 0" json:"price"`
	Image    string      `json:"image"`
	Category string      `json:"category"`
	Stock    []StockItem `gorm:"constraint:OnDelete:CASCADE; foreignKey:ProductID" json:"stock,omitempty"`
}

// StockItem is one sellable credential unit. Row ids follow insertion
// order, which is the allocation order. A unit is removed exactly once,
// either by a successful purchase or by an admin stock edit.
type StockItem struct {
	gorm.Model
	ID        uint   `gorm:"primary_key" autoIncrement:"true"`
	ProductID uint   `json:"-"`
	Code      string `gorm:"not null" json:"code" binding:"required"`
	Data      string `json:"data"`
}
