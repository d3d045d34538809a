package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vibe-gaming/registration/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY, raised by the unique email index.
const mysqlDuplicateEntry = 1062

// DSN builds the driver connection string for cfg.
func DSN(cfg config.Database) (string, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return "", fmt.Errorf("load db time zone %q: %w", cfg.TimeZone, err)
	}

	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true

	return conf.FormatDSN(), nil
}

func New(cfg config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open users database: %w", err)
	}

	conn.SetMaxIdleConns(cfg.MaxIdleConnections)
	conn.SetMaxOpenConns(cfg.MaxOpenConnections)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping users database at %s: %w", cfg.Server, err)
	}

	return conn, nil
}

// IsDuplicateEntry reports whether err is a MySQL unique key violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
