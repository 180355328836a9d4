// Package db holds the schema. Statements are idempotent so the runner
// can be re-executed safely.
package db

import (
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		uid        VARCHAR(128) PRIMARY KEY,
		email      VARCHAR(255) NOT NULL,
		created_at DATETIME(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          CHAR(26) PRIMARY KEY COMMENT 'ULID',
		owner_uid   VARCHAR(128) NOT NULL,
		owner_email VARCHAR(255) NOT NULL,
		title       VARCHAR(255) NOT NULL,
		genre       VARCHAR(100),
		tags        JSON,
		audio_url   TEXT NOT NULL,
		cover_url   TEXT,
		published   BOOLEAN NOT NULL DEFAULT FALSE,
		plays       BIGINT NOT NULL DEFAULT 0,
		like_count  BIGINT NOT NULL DEFAULT 0,
		pricing     JSON,
		created_at  DATETIME(6) NOT NULL,
		updated_at  DATETIME(6) NOT NULL,
		KEY idx_feed (published, created_at, id),
		KEY idx_owner_feed (owner_uid, published, created_at, id)
	)`,
	`CREATE TABLE IF NOT EXISTS like_edges (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_uid   VARCHAR(128) NOT NULL,
		item_id    CHAR(26) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_user_item (user_uid, item_id),
		KEY idx_user_feed (user_uid, id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		session_id          VARCHAR(255) PRIMARY KEY,
		amount_total        BIGINT NOT NULL,
		currency            VARCHAR(8) NOT NULL,
		customer_email      VARCHAR(255),
		payment_status      VARCHAR(32) NOT NULL,
		client_reference_id VARCHAR(128),
		metadata            JSON,
		created_at          DATETIME(6) NOT NULL
	)`,
}

// Migrate creates any missing tables.
func Migrate(sqlDB *sql.DB) error {
	for _, stmt := range statements {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return fmt.Errorf("db: migrate: %w", err)
		}
	}
	return nil
}
