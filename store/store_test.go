package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gamestore/logger"
)

func init() {
	logger.InitLoggerDev()
}

func dbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
	})
	if err != nil {
		t.Fatal(err)
	}
	return sqldb, gormdb, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at",
		"email", "password", "balance", "role", "banned"})
}

func addUserRow(rows *sqlmock.Rows, id uint, email string, balance float64, banned bool) *sqlmock.Rows {
	return rows.AddRow(id, time.Now(), time.Now(), nil, email, "hash", balance, "user", banned)
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at",
		"name", "price", "image", "category"})
}

func addProductRow(rows *sqlmock.Rows, id uint, name string, price float64) *sqlmock.Rows {
	return rows.AddRow(id, time.Now(), time.Now(), nil, name, price, "", "game")
}

func stockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at",
		"product_id", "code", "data"})
}

const (
	selectUserSQL    = `SELECT \* FROM "users" WHERE ID = \$1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT \$2`
	selectProductSQL = `SELECT \* FROM "products" WHERE ID = \$1 AND "products"."deleted_at" IS NULL ORDER BY "products"."id" LIMIT \$2`
	countStockSQL    = `SELECT count\(\*\) FROM "stock_items" WHERE product_id = \$1 AND "stock_items"."deleted_at" IS NULL`
	lockStockSQL     = `SELECT \* FROM "stock_items" WHERE product_id = \$1 AND "stock_items"."deleted_at" IS NULL ORDER BY id FOR UPDATE`
	removeStockSQL   = `UPDATE "stock_items" SET "deleted_at"=\$1 WHERE (.+)`
	debitSQL         = `UPDATE "users" SET "balance"=balance - \$1,"updated_at"=\$2 WHERE (.+)`
	insertPurchase   = `INSERT INTO "purchases" (.+)`
	creditSQL        = `UPDATE "users" SET "balance"=balance \+ \$1,"updated_at"=\$2 WHERE (.+)`
)
