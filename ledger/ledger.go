// Package ledger implements the allocation policy for a product's stock
// sequence: FIFO over insertion order, one unit at a time.
package ledger

import "gamestore/models"

// TakeOne selects the first available unit and returns it together with
// the remaining sequence. Removal is by index, not value equality, so
// duplicate-looking units are handled correctly. The input slice is not
// modified. Returns models.ErrOutOfStock when the sequence is empty.
func TakeOne(items []models.StockItem) (models.StockItem, []models.StockItem, error) {
	if len(items) == 0 {
		return models.StockItem{}, nil, models.ErrOutOfStock
	}
	rest := make([]models.StockItem, len(items)-1)
	copy(rest, items[1:])
	return items[0], rest, nil
}
