package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase is an append-only receipt. ProductName and Price are copies
// taken at transaction time; the product may change or disappear later.
type Purchase struct {
	gorm.Model
	ID           uint      `gorm:"primary_key" autoIncrement:"true"`
	ReceiptID    string    `gorm:"index:idx_receipt;unique;not null" json:"receiptId"`
	UserID       uint      `json:"-"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL; foreignKey:UserID" json:"-"`
	ProductID    uint      `json:"productId"`
	ProductName  string    `gorm:"not null" json:"productName"`
	Price        float64   `gorm:"check:price >= 0; not null" json:"price"`
	StockCode    string    `json:"stockCode"`
	StockData    string    `json:"stockData"`
	PurchaseDate time.Time `json:"purchaseDate"`
}
