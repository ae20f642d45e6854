package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore/database"
)

// GetProducts lists the catalog. Stock is exposed as a count only;
// credentials leave the store exclusively through a purchase receipt.
func GetProducts(context *gin.Context) {
	var products []productWithCount

	err := database.PostgresDB.Table("products").
		Select("products.id, products.name, products.price, products.image, products.category, count(stock_items.id) as stock").
		Joins("left join stock_items on stock_items.product_id = products.id and stock_items.deleted_at is null").
		Where("products.deleted_at is null").
		Group("products.id").
		Order("products.id").
		Scan(&products).Error
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load products"})
		context.Abort()
		return
	}

	schemas := make([]ProductSchema, 0, len(products))
	for _, p := range products {
		schemas = append(schemas, ProductSchema{
			ID: p.ID, Name: p.Name, Price: p.Price,
			Image: p.Image, Category: p.Category, Stock: p.Stock,
		})
	}
	context.JSON(http.StatusOK, schemas)
}

type productWithCount struct {
	ID       uint
	Name     string
	Price    float64
	Image    string
	Category string
	Stock    int
}

// GetProduct returns a single catalog entry by id.
func GetProduct(context *gin.Context) {
	var product productWithCount

	err := database.PostgresDB.Table("products").
		Select("products.id, products.name, products.price, products.image, products.category, count(stock_items.id) as stock").
		Joins("left join stock_items on stock_items.product_id = products.id and stock_items.deleted_at is null").
		Where("products.id = ? and products.deleted_at is null", context.Param("id")).
		Group("products.id").
		Scan(&product).Error
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Could not load product"})
		context.Abort()
		return
	}
	if product.ID == 0 {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: "Could not find product"})
		context.Abort()
		return
	}

	context.JSON(http.StatusOK, ProductSchema{
		ID: product.ID, Name: product.Name, Price: product.Price,
		Image: product.Image, Category: product.Category, Stock: product.Stock,
	})
}
