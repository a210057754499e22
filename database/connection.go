// database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/bellinghamhappyhours/bellingham-happy-hours/config"
	_ "github.com/go-sql-driver/mysql" // MySQL/MariaDB driver
)

var DB *sql.DB

// InitDB initializes the database connection pool for the snapshot store.
func InitDB(cfg config.DatabaseConfig) error {
	var err error
	// DSN: username:password@protocol(address)/dbname?param=value
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)

	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err = DB.Ping(); err != nil {
		DB.Close()
		DB = nil
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database: connected, sheet snapshot fallback enabled.")
	return nil
}

// Enabled reports whether a database connection is available. The service
// treats a disabled store as "no snapshot", never as an error.
func Enabled() bool {
	return DB != nil
}

// CloseDB closes the connection pool. Called on application shutdown.
func CloseDB() {
	if DB != nil {
		DB.Close()
		DB = nil
		log.Println("Database: connection closed.")
	}
}
