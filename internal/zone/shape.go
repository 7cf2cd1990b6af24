// 包 zone：区域形状（圆/三角形/四边形）与区域元数据，提供命中判定与代表中心点
package zone

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/geo"
)

// ShapeKind 形状标签，标识 Shape 持有哪一种变体；零值表示未构造的形状
type ShapeKind string

const (
	KindCircle        ShapeKind = "circle"
	KindTriangle      ShapeKind = "triangle"
	KindQuadrilateral ShapeKind = "quadrilateral"
)

var (
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrUnknownShape  = errors.New("unknown shape")
)

// ParseShapeKind 接受 circle / triangle / quadrilateral（忽略首尾空白与大小写）
func ParseShapeKind(s string) (ShapeKind, error) {
	switch k := ShapeKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindCircle, KindTriangle, KindQuadrilateral:
		return k, nil
	}
	return "", fmt.Errorf("%w %q, expected 'circle', 'triangle' or 'quadrilateral'", ErrUnknownShape, s)
}

// 文档注释：区域形状（带标签的联合体）
// 背景：圆形持有中心与半径，多边形持有按调用方顺序保存的顶点；判定与中心点计算均按标签分派，无继承层次。
// 约束：只能通过 NewCircle/NewTriangle/NewQuadrilateral 构造；顶点数量由构造函数签名固定为 3/4；构造后不可变。
type Shape struct {
	kind     ShapeKind
	center   geo.Point
	radius   int
	vertices []geo.Point
}

// NewCircle 半径必须为正且不超过 geo.MaxAbs；圆心坐标同样受 geo.MaxAbs 限制
func NewCircle(center geo.Point, radius int) (Shape, error) {
	if radius <= 0 {
		return Shape{}, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	if radius > geo.MaxAbs {
		return Shape{}, fmt.Errorf("%w: radius %d, limit is %d", geo.ErrCoordinateRange, radius, geo.MaxAbs)
	}
	if err := geo.CheckRange(center); err != nil {
		return Shape{}, err
	}
	return Shape{kind: KindCircle, center: center, radius: radius}, nil
}

// NewTriangle / NewQuadrilateral 不校验坐标范围；来自外部输入的顶点应先经 geo.CheckRange
func NewTriangle(a, b, c geo.Point) Shape {
	return Shape{kind: KindTriangle, vertices: []geo.Point{a, b, c}}
}

func NewQuadrilateral(a, b, c, d geo.Point) Shape {
	return Shape{kind: KindQuadrilateral, vertices: []geo.Point{a, b, c, d}}
}

func (s Shape) Kind() ShapeKind   { return s.kind }
func (s Shape) Center() geo.Point { return s.center }
func (s Shape) Radius() int       { return s.radius }

// Vertices 按保存顺序返回顶点副本；圆形返回 nil
func (s Shape) Vertices() []geo.Point {
	if s.vertices == nil {
		return nil
	}
	out := make([]geo.Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// 文档注释：点是否落在形状内
// 背景：圆形使用平方距离严格小于半径平方（圆周上视为未命中）；三角形与四边形按保存顺序委托给 geo 判定，边界计为命中。
// 约束：两种边界语义并存，属于对外可观察行为，不做统一。
func (s Shape) Contains(p geo.Point) bool {
	switch s.kind {
	case KindCircle:
		r := int64(s.radius)
		return geo.DistanceSquared(p, s.center) < r*r
	case KindTriangle:
		v := s.vertices
		return geo.InTriangle(p, v[0], v[1], v[2])
	case KindQuadrilateral:
		v := s.vertices
		return geo.InQuadrilateral(p, v[0], v[1], v[2], v[3])
	}
	return false
}

// 文档注释：代表中心点（仅用于最近区域排序）
// 背景：圆形返回圆心；多边形返回顶点坐标的分量平均，使用整数除法向零截断。
// 约束：四边形不是真实质心，仅为顶点平均，保持该近似。
func (s Shape) Centroid() geo.Point {
	if s.kind == KindCircle {
		return s.center
	}
	if len(s.vertices) == 0 {
		return geo.Point{}
	}
	var sx, sy int
	for _, v := range s.vertices {
		sx += v.X
		sy += v.Y
	}
	n := len(s.vertices)
	return geo.Point{X: sx / n, Y: sy / n}
}

// Params 以输入解析器接受的空白分隔文本输出形状参数，如圆 "0;0 5"、三角形 "5;5 10;5 10;10"
func (s Shape) Params() string {
	if s.kind == KindCircle {
		return fmt.Sprintf("%s %d", s.center, s.radius)
	}
	parts := make([]string, len(s.vertices))
	for i, v := range s.vertices {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}
