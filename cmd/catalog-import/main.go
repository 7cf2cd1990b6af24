// 目录导入：把 JSON 区域目录写入 PostgreSQL（dispatch_cities / dispatch_zones）
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"dispatch/internal/catalog"
	"dispatch/internal/config"
	"dispatch/internal/logger"
	"dispatch/internal/migrate"
	"dispatch/internal/store"
	"dispatch/internal/utils"
)

func main() {
	config.LoadDotenv()
	l := logger.Setup()

	path := flag.String("file", os.Getenv("DISPATCH_CATALOG_PATH"), "catalog JSON file")
	builtin := flag.Bool("builtin", false, "import the built-in city instead of a file")
	flag.Parse()

	city := catalog.Builtin()
	if !*builtin {
		if *path == "" {
			l.Error("catalog_path_missing", "hint", "pass -file or set DISPATCH_CATALOG_PATH")
			os.Exit(1)
		}
		c, err := catalog.LoadFile(*path)
		if err != nil {
			l.Error("catalog_read_error", "path", *path, "err", err)
			os.Exit(1)
		}
		city = c
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		l.Error("db_open_error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		l.Error("db_ping_error", "err", err)
		os.Exit(1)
	}
	if err := migrate.EnsureSchema(ctx, db); err != nil {
		l.Error("schema_error", "err", err)
		os.Exit(1)
	}
	if err := store.AttachDB(db).SaveCity(ctx, city); err != nil {
		l.Error("catalog_import_error", "city", city.Name, "err", err)
		os.Exit(1)
	}
	l.Info("catalog_import_done", "city", city.Name, "zones", len(city.Zones))
}
