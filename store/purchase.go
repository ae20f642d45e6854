package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamestore/ledger"
	"gamestore/logger"
	"gamestore/models"
)

// Receipt is what a buyer gets back on a successful purchase.
type Receipt struct {
	ReceiptID   string  `json:"receiptId"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	StockCode   string  `json:"stockCode"`
	StockData   string  `json:"stockData"`
}

// Buy debits the buyer by the product's price and hands over one stock
// unit. Preconditions are checked in order before any mutation: account
// exists and is not banned, product exists with at least one unit,
// balance covers the price. The three effects (unit removal, debit,
// receipt append) commit in a single database transaction; the stock
// rows are locked FOR UPDATE, so concurrent buyers of the last unit get
// exactly one success and one ErrOutOfStock.
func (s *Store) Buy(userID uint, productID uint) (*Receipt, error) {
	logger.Log.Debugw("Starting purchase", "user_id", userID, "product_id", productID)

	var user models.User
	if err := s.db.Where("ID = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAccountNotFound
		}
		return nil, fmt.Errorf("buy: account lookup: %w", err)
	}
	if user.Banned {
		logger.Log.Warnw("Banned account attempted purchase", "user_id", user.ID)
		return nil, models.ErrAccountBanned
	}

	var product models.Product
	if err := s.db.Where("ID = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, fmt.Errorf("buy: product lookup: %w", err)
	}

	// Stock presence is checked before funds: an empty shelf fails the
	// same way regardless of the buyer's balance.
	var available int64
	if err := s.db.Model(&models.StockItem{}).
		Where("product_id = ?", product.ID).Count(&available).Error; err != nil {
		return nil, fmt.Errorf("buy: stock count: %w", err)
	}
	if available == 0 {
		return nil, models.ErrOutOfStock
	}

	if user.Balance < product.Price {
		return nil, models.ErrInsufficientFunds
	}

	receipt := &Receipt{
		ReceiptID:   uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var stock []models.StockItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", product.ID).
			Order("id").Find(&stock).Error; err != nil {
			return fmt.Errorf("lock stock: %w", err)
		}

		unit, _, err := ledger.TakeOne(stock)
		if err != nil {
			return err
		}

		result := tx.Where("ID = ?", unit.ID).Delete(&models.StockItem{})
		if result.Error != nil {
			return fmt.Errorf("remove stock item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrOutOfStock
		}

		result = tx.Model(&models.User{}).
			Where("ID = ? AND balance >= ?", user.ID, product.Price).
			Update("Balance", gorm.Expr("balance - ?", product.Price))
		if result.Error != nil {
			if balanceCheckViolated(result.Error) {
				return models.ErrInsufficientFunds
			}
			return fmt.Errorf("debit balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return models.ErrInsufficientFunds
		}

		purchase := models.Purchase{
			ReceiptID:    receipt.ReceiptID,
			UserID:       user.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			Price:        product.Price,
			StockCode:    unit.Code,
			StockData:    unit.Data,
			PurchaseDate: time.Now(),
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("record purchase: %w", err)
		}

		receipt.StockCode = unit.Code
		receipt.StockData = unit.Data
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrOutOfStock) || errors.Is(err, models.ErrInsufficientFunds) {
			return nil, err
		}
		logger.Log.Errorw("Purchase transaction failed",
			"user_id", user.ID, "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", models.ErrPurchaseFailed, err)
	}

	logger.Log.Infow("Purchase committed",
		"receipt_id", receipt.ReceiptID, "user_id", user.ID,
		"product_id", product.ID, "price", product.Price)
	return receipt, nil
}

// History returns the account's purchases, newest first.
func (s *Store) History(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).
		Order("purchase_date desc").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return purchases, nil
}
