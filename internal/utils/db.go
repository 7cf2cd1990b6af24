// 包 utils：PostgreSQL 连接（PG_* 环境变量）
package utils

import (
	"database/sql"
	"net/url"

	"dispatch/internal/config"

	_ "github.com/lib/pq"
)

// BuildPostgresDSNFromEnv 由 PG_HOST/PG_PORT/PG_USER/PG_PASSWORD/PG_DB/PG_SSLMODE 拼接 DSN；
// PG_DSN 非空时直接使用
func BuildPostgresDSNFromEnv() string {
	if dsn := config.Getenv("PG_DSN", ""); dsn != "" {
		return dsn
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   config.Getenv("PG_HOST", "localhost") + ":" + config.Getenv("PG_PORT", "5432"),
		Path:   "/" + config.Getenv("PG_DB", "dispatch"),
	}
	user := config.Getenv("PG_USER", "postgres")
	if pass := config.Getenv("PG_PASSWORD", ""); pass != "" {
		u.User = url.UserPassword(user, pass)
	} else {
		u.User = url.User(user)
	}
	u.RawQuery = "sslmode=" + url.QueryEscape(config.Getenv("PG_SSLMODE", "disable"))
	return u.String()
}

// OpenPostgres 打开连接池；只做 sql.Open，不探活
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(config.IntEnv("PG_MAX_OPEN_CONNS", 4))
	db.SetMaxIdleConns(config.IntEnv("PG_MAX_IDLE_CONNS", 2))
	return db, nil
}

func OpenPostgresFromEnv() (*sql.DB, error) {
	return OpenPostgres(BuildPostgresDSNFromEnv())
}
