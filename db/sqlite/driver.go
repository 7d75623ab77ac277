package sqlite

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverName is the database/sql driver registered with the MySQL
// compatibility functions the darkstar queries rely on.
const DriverName = "sqlite3_darkstar"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("password", MySQLPassword, true)
		},
	})
}

// MySQLPassword reproduces MySQL's PASSWORD(): "*" + upper hex of sha1(sha1(s)).
func MySQLPassword(s string) string {
	first := sha1.Sum([]byte(s))
	second := sha1.Sum(first[:])
	return "*" + strings.ToUpper(hex.EncodeToString(second[:]))
}

// Open creates a GORM *DB backed by SQLite (mattn/go-sqlite3).
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: DriverName, DSN: path}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
