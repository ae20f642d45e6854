package store

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"gamestore/logger"
	"gamestore/models"
)

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// Credit adds amount to the account's balance and returns the new
// balance. Non-positive or non-finite amounts fail with
// ErrInvalidAmount before any storage access.
func (s *Store) Credit(userID uint, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, models.ErrInvalidAmount
	}

	var user models.User
	if err := s.db.Where("ID = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrAccountNotFound
		}
		return 0, fmt.Errorf("credit: account lookup: %w", err)
	}

	result := s.db.Model(&user).Update("Balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return 0, fmt.Errorf("credit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, models.ErrAccountNotFound
	}

	newBalance, err := s.Balance(userID)
	if err != nil {
		return 0, err
	}
	logger.Log.Infow("Balance credited", "user_id", userID, "amount", amount, "new_balance", newBalance)
	return newBalance, nil
}

// Debit subtracts amount from the account's balance. The UPDATE is
// conditional on the current balance covering the amount, so the result
// never goes negative even under concurrent spenders.
func (s *Store) Debit(userID uint, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, models.ErrInvalidAmount
	}

	var user models.User
	if err := s.db.Where("ID = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrAccountNotFound
		}
		return 0, fmt.Errorf("debit: account lookup: %w", err)
	}
	if user.Balance < amount {
		return 0, models.ErrInsufficientFunds
	}

	result := s.db.Model(&models.User{}).
		Where("ID = ? AND balance >= ?", userID, amount).
		Update("Balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		if balanceCheckViolated(result.Error) {
			return 0, models.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("debit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, models.ErrInsufficientFunds
	}

	return s.Balance(userID)
}

// Balance reads the account's current balance.
func (s *Store) Balance(userID uint) (float64, error) {
	var user models.User
	if err := s.db.Where("ID = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrAccountNotFound
		}
		return 0, fmt.Errorf("balance: %w", err)
	}
	return user.Balance, nil
}
