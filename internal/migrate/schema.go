package migrate

import (
	"context"
	"database/sql"

	"dispatch/internal/logger"
)

// 背景：首次运行自动创建城市与区域表，供目录导入与加载使用
// 约束：使用 IF NOT EXISTS，可重复执行；区域按 position 保持目录中的顺序
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dispatch_cities (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            common_number TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS dispatch_zones (
            city_id INT NOT NULL REFERENCES dispatch_cities(id) ON DELETE CASCADE,
            position INT NOT NULL,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            dept_code TEXT NOT NULL,
            danger_level TEXT NOT NULL,
            shape_type TEXT NOT NULL,
            params TEXT NOT NULL,
            PRIMARY KEY (city_id, position)
        )`,
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i)
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	logger.L().Debug("schema_done")
	return nil
}
