package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"piercing-service/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func ConnectionString(cfg config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBname, cfg.SSLMode)
}

var openDB = func(dsn string) (*sqlx.DB, error) {
	return sqlx.Open("postgres", dsn)
}

// ConnectAndCreateDB returns a pinged pool with the schema in place. The pool
// is closed again when either step fails.
func ConnectAndCreateDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	db, err := openDB(ConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to target database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := prepare(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// prepare pings the pool and brings the schema up to date.
func prepare(ctx context.Context, db *sqlx.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping target database: %w", err)
	}
	return EnsureSchema(ctx, db)
}

// RetryConnectOnFailed keeps reconnecting every wait_amount until a healthy
// connection is stored in *db.
func RetryConnectOnFailed(wait_amount time.Duration, db **sqlx.DB, cfg config.PostgresConfig) {
	for {
		if *db != nil {
			if err := (*db).Ping(); err == nil {
				log.Printf("database connection is healthy, no retry needed")
				return
			} else {
				log.Printf("failed to ping target database: %s, retry db connection\n", err)
			}
		} else {
			log.Printf("database connection is nil, attempting to reconnect...")
		}

		newDB, err := ConnectAndCreateDB(cfg)
		if err == nil {
			*db = newDB
			log.Printf("database retry connection successfully\n")
			return
		}
		log.Printf("failed to retry connect database: %s, next retry in %v\n", err, wait_amount)
		time.Sleep(wait_amount)
	}
}
