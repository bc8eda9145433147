package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/config"
)

// DSN menyusun data source name dari konfigurasi. Waktu disimpan dalam UTC.
func DSN(cfg *config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// Connect membuka koneksi ke database MariaDB dan memastikan server bisa dihubungi.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.WithFields(log.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("connected to MariaDB")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS Prediction_History (
		id                CHAR(36)     NOT NULL PRIMARY KEY,
		session_id        VARCHAR(36)  NOT NULL DEFAULT '',
		payload           JSON         NOT NULL,
		prediction        VARCHAR(64)  NOT NULL,
		verdict           VARCHAR(16)  NOT NULL,
		probability       DOUBLE       NULL,
		service_timestamp VARCHAR(64)  NOT NULL,
		created_at        DATETIME(3)  NOT NULL,
		INDEX idx_prediction_history_created (created_at)
	)`,
	`CREATE TABLE IF NOT EXISTS Donation (
		id          CHAR(36)     NOT NULL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		email       VARCHAR(255) NOT NULL,
		card_last4  CHAR(4)      NOT NULL,
		amount      BIGINT       NOT NULL,
		status      VARCHAR(16)  NOT NULL,
		created_at  DATETIME(3)  NOT NULL,
		verified_at DATETIME(3)  NULL,
		INDEX idx_donation_verified (verified_at)
	)`,
}

// Migrate membuat tabel yang dibutuhkan jika belum ada.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
