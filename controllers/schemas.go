package controllers

import (
	"gamestore/dialog"
	"gamestore/models"
)

type TokenResponse struct {
	SignedToken string `json:"token"`
}

type ErrorResponse struct {
	Error  string             `json:"error"`
	Dialog *dialog.Descriptor `json:"dialog,omitempty"`
}

// errorBody pairs the error message with the dialog descriptor the
// front end should open for it.
func errorBody(message string, err error) ErrorResponse {
	d := dialog.FromError(err)
	return ErrorResponse{Error: message, Dialog: &d}
}

type ProductSchema struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

type CreateProductPayload struct {
	Name     string             `json:"name" binding:"required"`
	Price    float64            `json:"price" binding:"gte=0"`
	Image    string             `json:"image"`
	Category string             `json:"category"`
	Stock    []StockItemPayload `json:"stock"`
}

type StockItemPayload struct {
	Code string `json:"code" binding:"required"`
	Data string `json:"data"`
}

type WalletSchema struct {
	Balance float64 `json:"balance"`
}

type TopUpPayload struct {
	Amount float64 `json:"amount" binding:"required"`
}

type BanPayload struct {
	Banned *bool `json:"banned" binding:"required"`
}

type UserSchema struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	Balance   float64 `json:"balance"`
	Role      string  `json:"role"`
	Banned    bool    `json:"banned"`
	CreatedAt string  `json:"createdAt"`
}

func toProductSchema(p models.Product) ProductSchema {
	return ProductSchema{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Stock:    len(p.Stock),
	}
}
