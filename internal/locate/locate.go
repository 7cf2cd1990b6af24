// 包 locate：事故定位（单区域直判 / 城市区域列表首个命中，未命中按中心点平方距离取最近区域）
package locate

import (
	"errors"

	"dispatch/internal/geo"
	"dispatch/internal/zone"

	"github.com/samber/lo"
)

type Outcome int

const (
	NotMatched Outcome = iota
	Matched
	Nearest
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Nearest:
		return "nearest"
	}
	return "not_matched"
}

var ErrEmptyZoneList = errors.New("no zones available")

// 文档注释：定位结果
// 背景：Matched 表示区域包含事故点；Nearest 表示无区域命中，Zone 为中心点最近的区域，DistanceSquared 为到其中心点的平方距离；
// NotMatched 仅出现在单区域直判中，调用方应转接公共号码。
type Result struct {
	Outcome         Outcome
	Zone            zone.Zone
	DistanceSquared int64
}

// Check 单区域直判：命中返回 Matched，否则 NotMatched
func Check(z zone.Zone, p geo.Point) Result {
	if z.Contains(p) {
		return Result{Outcome: Matched, Zone: z}
	}
	return Result{Outcome: NotMatched, Zone: z, DistanceSquared: geo.DistanceSquared(p, z.Centroid())}
}

type candidate struct {
	zone zone.Zone
	d    int64
}

// 文档注释：区域列表定位
// 背景：按列表顺序扫描，返回第一个包含事故点的区域（后续区域即便也包含该点也不考虑）；
// 全部未命中时计算事故点到各区域中心点的精确平方距离，取最小者，距离相同取列表中靠前者。
// 约束：形状未经构造函数创建（Kind 为空）的区域不参与判定与排序；没有可用区域时返回 ErrEmptyZoneList，不会 panic；纯函数，可并发调用。
func Locate(zones []zone.Zone, p geo.Point) (Result, error) {
	zones = lo.Filter(zones, func(z zone.Zone, _ int) bool { return z.Shape.Kind() != "" })
	if len(zones) == 0 {
		return Result{}, ErrEmptyZoneList
	}
	if z, ok := lo.Find(zones, func(z zone.Zone) bool { return z.Contains(p) }); ok {
		return Result{Outcome: Matched, Zone: z}, nil
	}
	cands := lo.Map(zones, func(z zone.Zone, _ int) candidate {
		return candidate{zone: z, d: geo.DistanceSquared(p, z.Centroid())}
	})
	// MinBy 仅在严格更小时替换，距离相同保留先出现的区域
	best := lo.MinBy(cands, func(a, b candidate) bool { return a.d < b.d })
	return Result{Outcome: Nearest, Zone: best.zone, DistanceSquared: best.d}, nil
}

// City 城市：名称、公共号码与有序区域列表（顺序即命中优先级与并列裁决顺序）
type City struct {
	Name         string
	CommonNumber string
	Zones        []zone.Zone
}

func (c City) Locate(p geo.Point) (Result, error) { return Locate(c.Zones, p) }
