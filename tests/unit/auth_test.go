package unit

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamestore/controllers"
	"gamestore/database"
	applogger "gamestore/logger"
)

func init() {
	applogger.InitLoggerDev()
}

func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		t.Fatal(err)
	}
	return sqldb, gormdb, mock
}

const selectUserByEmailSQL = `SELECT \* FROM "users" WHERE Email = \$1 AND "users"."deleted_at" IS NULL ORDER BY "users"."id" LIMIT \$2`

func TestAuth(t *testing.T) {
	sqlDB, db, mock := DbMock(t)
	defer sqlDB.Close()

	database.PostgresDB = db
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at",
		"email", "password", "balance", "role", "banned"})

	t.Run("Should not bind user schema StatusBadRequest", func(t *testing.T) {
		user := map[string]interface{}{
			"email":    "not-an-email",
			"password": "admin"}

		gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		authBody, err := json.Marshal(user)
		assert.NoError(t, err)

		c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(authBody))

		controllers.Auth(c)

		if w.Code != http.StatusBadRequest || w.Body.String() != `{"error":"Does not bind schema"}` {
			b, _ := io.ReadAll(w.Body)
			t.Error(w.Code, string(b))
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("There were unfulfilled expectations: %s", err)
		}

	})

	t.Run("Should not make correct select method", func(t *testing.T) {
		user := map[string]interface{}{
			"email":    "admin@gamestore.com",
			"password": "admin"}

		mock.ExpectQuery(selectUserByEmailSQL).
			WithArgs(user["email"], 1).
			WillReturnError(gorm.ErrInvalidField)

		gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		authBody, err := json.Marshal(user)
		assert.NoError(t, err)

		c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(authBody))

		controllers.Auth(c)

		if w.Code != http.StatusInternalServerError || w.Body.String() != `{"error":"Could not make search result"}` {
			b, _ := io.ReadAll(w.Body)
			t.Error(w.Code, string(b))
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("There were unfulfilled expectations: %s", err)
		}

	})

	t.Run("Successfully register new user", func(t *testing.T) {
		user := map[string]interface{}{
			"email":    "player@example.com",
			"password": "admin"}
		hashedPass := "$2a$14$3S5a3omnocQh0KqgOBjjh.dA/TdNRUnaETsLV5PqjrJ/Gs757i8NS"

		mock.ExpectQuery(selectUserByEmailSQL).
			WithArgs(user["email"], 1).
			WillReturnError(gorm.ErrRecordNotFound)

		insertSQL := `INSERT INTO "users" (.+)`
		addRow := rows.AddRow(1, time.Now(), time.Now(), nil, user["email"], hashedPass, 0, "user", false)
		mock.ExpectBegin()
		mock.ExpectQuery(insertSQL).WillReturnRows(addRow)
		mock.ExpectCommit()

		gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		authBody, err := json.Marshal(user)
		assert.NoError(t, err)

		c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(authBody))

		controllers.Auth(c)

		if w.Code != http.StatusOK {
			b, _ := io.ReadAll(w.Body)
			t.Error(w.Code, string(b))
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("There were unfulfilled expectations: %s", err)
		}

	})

	t.Run("Should reject wrong password for existing user", func(t *testing.T) {
		user := map[string]interface{}{
			"email":    "player@example.com",
			"password": "wrongPassword"}
		hashedPass := "$2a$14$3S5a3omnocQh0KqgOBjjh.dA/TdNRUnaETsLV5PqjrJ/Gs757i8NS"
		addRow := rows.AddRow(1, time.Now(), time.Now(), nil, user["email"], hashedPass, 0, "user", false)

		mock.ExpectQuery(selectUserByEmailSQL).
			WithArgs(user["email"], 1).
			WillReturnRows(addRow)

		gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		authBody, err := json.Marshal(user)
		assert.NoError(t, err)

		c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(authBody))

		controllers.Auth(c)

		if w.Code != http.StatusUnauthorized || w.Body.String() != `{"error":"Incorrect password"}` {
			b, _ := io.ReadAll(w.Body)
			t.Error(w.Code, string(b))
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("There were unfulfilled expectations: %s", err)
		}

	})

	t.Run("Should reject banned user", func(t *testing.T) {
		user := map[string]interface{}{
			"email":    "banned@example.com",
			"password": "admin"}
		hashedPass := "$2a$14$3S5a3omnocQh0KqgOBjjh.dA/TdNRUnaETsLV5PqjrJ/Gs757i8NS"
		addRow := rows.AddRow(2, time.Now(), time.Now(), nil, user["email"], hashedPass, 0, "user", true)

		mock.ExpectQuery(selectUserByEmailSQL).
			WithArgs(user["email"], 1).
			WillReturnRows(addRow)

		gin.SetMode(gin.TestMode)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		authBody, err := json.Marshal(user)
		assert.NoError(t, err)

		c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(authBody))

		controllers.Auth(c)

		if w.Code != http.StatusForbidden {
			b, _ := io.ReadAll(w.Body)
			t.Error(w.Code, string(b))
		}
		if err = mock.ExpectationsWereMet(); err != nil {
			t.Errorf("There were unfulfilled expectations: %s", err)
		}

	})
}
