// 包 catalog：城市区域目录的来源（内置 / JSON 文件 / PostgreSQL）
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dispatch/internal/config"
	"dispatch/internal/geo"
	"dispatch/internal/locate"
	"dispatch/internal/logger"
	"dispatch/internal/phone"
	"dispatch/internal/store"
	"dispatch/internal/utils"
	"dispatch/internal/zone"

	"github.com/samber/lo"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// File 目录文件结构
type File struct {
	Name         string     `json:"name"`
	CommonNumber string     `json:"common_number"`
	Zones        []ZoneJSON `json:"zones"`
}

type ZoneJSON struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	DeptCode    string    `json:"dept_code"`
	DangerLevel string    `json:"danger_level"`
	Shape       ShapeJSON `json:"shape"`
}

// ShapeJSON：circle 使用 center + radius，triangle / quadrilateral 使用 vertices
type ShapeJSON struct {
	Type     string   `json:"type"`
	Center   []int    `json:"center,omitempty"`
	Radius   int      `json:"radius,omitempty"`
	Vertices [][2]int `json:"vertices,omitempty"`
}

func toPoint(v [2]int) geo.Point { return geo.Point{X: v[0], Y: v[1]} }

func (s ShapeJSON) build() (zone.Shape, error) {
	kind, err := zone.ParseShapeKind(s.Type)
	if err != nil {
		return zone.Shape{}, err
	}
	switch kind {
	case zone.KindCircle:
		if len(s.Center) != 2 {
			return zone.Shape{}, fmt.Errorf("%w: circle center needs 2 values, have %d", ErrInvalidCatalog, len(s.Center))
		}
		return zone.NewCircle(geo.Point{X: s.Center[0], Y: s.Center[1]}, s.Radius)
	case zone.KindTriangle:
		if len(s.Vertices) != 3 {
			return zone.Shape{}, fmt.Errorf("%w: triangle needs 3 vertices, have %d", ErrInvalidCatalog, len(s.Vertices))
		}
		v := lo.Map(s.Vertices, func(p [2]int, _ int) geo.Point { return toPoint(p) })
		if err := geo.CheckRange(v...); err != nil {
			return zone.Shape{}, err
		}
		return zone.NewTriangle(v[0], v[1], v[2]), nil
	default:
		if len(s.Vertices) != 4 {
			return zone.Shape{}, fmt.Errorf("%w: quadrilateral needs 4 vertices, have %d", ErrInvalidCatalog, len(s.Vertices))
		}
		v := lo.Map(s.Vertices, func(p [2]int, _ int) geo.Point { return toPoint(p) })
		if err := geo.CheckRange(v...); err != nil {
			return zone.Shape{}, err
		}
		return zone.NewQuadrilateral(v[0], v[1], v[2], v[3]), nil
	}
}

// 文档注释：把目录文件结构转换为城市
// 背景：每个区域都经过形状构造函数校验；区域电话经 phone.Mask 统一展示格式；目录中的顺序即匹配优先级，原样保留。
// 约束：任一区域非法时整体失败，错误中带区域下标与名称。
func (f File) City() (locate.City, error) {
	if f.Name == "" {
		return locate.City{}, fmt.Errorf("%w: city name is empty", ErrInvalidCatalog)
	}
	city := locate.City{Name: f.Name, CommonNumber: f.CommonNumber}
	for i, zj := range f.Zones {
		danger, err := zone.ParseDangerLevel(zj.DangerLevel)
		if err != nil {
			return locate.City{}, fmt.Errorf("zone %d (%s): %w", i, zj.Name, err)
		}
		shape, err := zj.Shape.build()
		if err != nil {
			return locate.City{}, fmt.Errorf("zone %d (%s): %w", i, zj.Name, err)
		}
		city.Zones = append(city.Zones, zone.Zone{
			Name:     zj.Name,
			Phone:    phone.Mask(zj.Phone),
			DeptCode: zj.DeptCode,
			Danger:   danger,
			Shape:    shape,
		})
	}
	return city, nil
}

// LoadFile 读取 JSON 目录文件
func LoadFile(path string) (locate.City, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return locate.City{}, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return locate.City{}, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, path, err)
	}
	return f.City()
}

// 文档注释：内置城市 Novobobrovsk
// 背景：未配置外部目录时使用；三个区域依次为 Market（圆）、Pasture（三角形）、Farm（四边形）。
// 约束：Farm 的顶点沿 y=x 排列，第二个三角形退化；按原样保留。
func Builtin() locate.City {
	market, _ := zone.NewCircle(geo.Point{X: 0, Y: 0}, 5)
	return locate.City{
		Name:         "Novobobrovsk",
		CommonNumber: "8 (800) 555 35 35",
		Zones: []zone.Zone{
			{
				Name:     "Market",
				Phone:    phone.Mask("82345678900"),
				DeptCode: "123",
				Danger:   zone.DangerHigh,
				Shape:    market,
			},
			{
				Name:     "Pasture",
				Phone:    phone.Mask("89156543211"),
				DeptCode: "456",
				Danger:   zone.DangerLow,
				Shape:    zone.NewTriangle(geo.Point{X: 5, Y: 5}, geo.Point{X: 10, Y: 5}, geo.Point{X: 10, Y: 10}),
			},
			{
				Name:     "Farm",
				Phone:    phone.Mask("88006543211"),
				DeptCode: "336",
				Danger:   zone.DangerMedium,
				Shape:    zone.NewQuadrilateral(geo.Point{X: -5, Y: -5}, geo.Point{X: -10, Y: -5}, geo.Point{X: -10, Y: -10}, geo.Point{X: -15, Y: -15}),
			},
		},
	}
}

// FromCity 反向转换，导出目录文件时使用
func FromCity(c locate.City) File {
	f := File{Name: c.Name, CommonNumber: c.CommonNumber}
	f.Zones = lo.Map(c.Zones, func(z zone.Zone, _ int) ZoneJSON {
		s := ShapeJSON{Type: string(z.Shape.Kind())}
		if z.Shape.Kind() == zone.KindCircle {
			s.Center = []int{z.Shape.Center().X, z.Shape.Center().Y}
			s.Radius = z.Shape.Radius()
		} else {
			s.Vertices = lo.Map(z.Shape.Vertices(), func(p geo.Point, _ int) [2]int { return [2]int{p.X, p.Y} })
		}
		return ZoneJSON{Name: z.Name, Phone: z.Phone, DeptCode: z.DeptCode, DangerLevel: string(z.Danger), Shape: s}
	})
	return f
}

// 文档注释：按配置加载城市目录
// 背景：builtin 直接返回内置城市；file 读取 DISPATCH_CATALOG_PATH；postgres 按 DISPATCH_CITY 读取 dispatch_zones。
// 约束：区域列表为空不是加载错误，由定位阶段返回 ErrEmptyZoneList；此处只记录告警。
func Load(ctx context.Context, cfg config.Config) (locate.City, error) {
	var (
		city locate.City
		err  error
	)
	switch cfg.CatalogSource {
	case config.SourceFile:
		city, err = LoadFile(cfg.CatalogPath)
	case config.SourcePostgres:
		city, err = loadPostgres(ctx, cfg.City)
	default:
		city = Builtin()
	}
	if err != nil {
		return locate.City{}, err
	}
	if len(city.Zones) == 0 {
		logger.L().Warn("catalog_empty", "city", city.Name, "source", cfg.CatalogSource)
	}
	logger.L().Info("catalog_loaded", "city", city.Name, "zones", len(city.Zones), "source", cfg.CatalogSource)
	return city, nil
}

func loadPostgres(ctx context.Context, name string) (locate.City, error) {
	db, err := utils.OpenPostgresFromEnv()
	if err != nil {
		return locate.City{}, err
	}
	st := store.AttachDB(db)
	defer st.Close()
	if err := db.PingContext(ctx); err != nil {
		return locate.City{}, fmt.Errorf("postgres ping: %w", err)
	}
	return st.LoadCity(ctx, name)
}
