// 包 store: 提供与 PostgreSQL 的数据访问层，保存与读取城市区域目录
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dispatch/internal/locate"
	"dispatch/internal/logger"
	"dispatch/internal/parse"
	"dispatch/internal/zone"

	_ "github.com/lib/pq"
)

var ErrCityNotFound = errors.New("city not found")

// Store: 数据库访问入口，持有连接池
type Store struct {
	db *sql.DB
}

func AttachDB(db *sql.DB) *Store { return &Store{db: db} }

// Close: 关闭数据库连接
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

// 文档注释：按名称读取城市与其区域列表
// 背景：区域按 position 升序返回，与导入时目录中的顺序一致；形状参数以文本保存，读取时交给 parse 包重建。
// 约束：城市不存在返回 ErrCityNotFound；任一区域记录无法还原时整体失败，并指明 position。
func (s *Store) LoadCity(ctx context.Context, name string) (locate.City, error) {
	var (
		id   int
		city = locate.City{Name: name}
	)
	row := s.db.QueryRowContext(ctx, "SELECT id, common_number FROM dispatch_cities WHERE name=$1", name)
	if err := row.Scan(&id, &city.CommonNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return locate.City{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
		}
		return locate.City{}, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT position, name, phone, dept_code, danger_level, shape_type, params
        FROM dispatch_zones WHERE city_id=$1 ORDER BY position ASC`, id)
	if err != nil {
		return locate.City{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			pos                 int
			z                   zone.Zone
			danger, kind, param string
		)
		if err := rows.Scan(&pos, &z.Name, &z.Phone, &z.DeptCode, &danger, &kind, &param); err != nil {
			return locate.City{}, err
		}
		if z.Danger, err = zone.ParseDangerLevel(danger); err != nil {
			return locate.City{}, fmt.Errorf("zone at position %d: %w", pos, err)
		}
		k, err := zone.ParseShapeKind(kind)
		if err != nil {
			return locate.City{}, fmt.Errorf("zone at position %d: %w", pos, err)
		}
		if z.Shape, err = parse.Shape(k, param); err != nil {
			return locate.City{}, fmt.Errorf("zone at position %d: %w", pos, err)
		}
		city.Zones = append(city.Zones, z)
	}
	if err := rows.Err(); err != nil {
		return locate.City{}, err
	}
	logger.L().Debug("db_city_loaded", "city", name, "zones", len(city.Zones))
	return city, nil
}

// 文档注释：写入城市目录（替换该城市的全部区域）
// 背景：供目录导入工具使用；城市按名称 upsert，区域先删后插，position 取列表下标。
// 约束：单事务执行，失败时回滚，不留下半套区域。
func (s *Store) SaveCity(ctx context.Context, city locate.City) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id int
	if err = tx.QueryRowContext(ctx, `INSERT INTO dispatch_cities(name, common_number) VALUES($1, $2)
        ON CONFLICT (name) DO UPDATE SET common_number=EXCLUDED.common_number
        RETURNING id`, city.Name, city.CommonNumber).Scan(&id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM dispatch_zones WHERE city_id=$1", id); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dispatch_zones(city_id, position, name, phone, dept_code, danger_level, shape_type, params)
        VALUES($1,$2,$3,$4,$5,$6,$7,$8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, z := range city.Zones {
		if _, err = stmt.ExecContext(ctx, id, i, z.Name, z.Phone, z.DeptCode, string(z.Danger), string(z.Shape.Kind()), z.Shape.Params()); err != nil {
			return fmt.Errorf("zone %q: %w", z.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	logger.L().Info("db_city_saved", "city", city.Name, "zones", len(city.Zones))
	return nil
}
