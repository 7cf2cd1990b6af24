// 包 parse：终端输入边界层，把 "x;y" 坐标与形状参数文本解析为已校验的值；格式错误返回描述性错误，不 panic
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/geo"
	"dispatch/internal/zone"
)

var ErrParamCount = errors.New("unexpected number of parameters")

// CoordinateError 坐标文本无法解析为两个范围内整数时返回
type CoordinateError struct {
	Input string
	Parts []string
	Err   error
}

func (e *CoordinateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid coordinate %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid coordinate %q, splits into %#v", e.Input, e.Parts)
}

func (e *CoordinateError) Unwrap() error { return e.Err }

// 文档注释：解析坐标
// 背景：输入形如 "3;4" 或 " 3 ; 4 "，按分号切分为两段并裁剪空白后解析为整数。
// 约束：段数必须为 2；任一段不是整数或绝对值超过 geo.MaxAbs 即返回 *CoordinateError。
func Coordinates(s string) (geo.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) != 2 {
		return geo.Point{}, &CoordinateError{Input: s, Parts: parts}
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geo.Point{}, &CoordinateError{Input: s, Parts: parts, Err: fmt.Errorf("parsing x: %w", err)}
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geo.Point{}, &CoordinateError{Input: s, Parts: parts, Err: fmt.Errorf("parsing y: %w", err)}
	}
	p := geo.Point{X: x, Y: y}
	if err := geo.CheckRange(p); err != nil {
		return geo.Point{}, &CoordinateError{Input: s, Parts: parts, Err: err}
	}
	return p, nil
}

func points(s string, want int) ([]geo.Point, error) {
	tokens := strings.Fields(s)
	if len(tokens) != want {
		return nil, fmt.Errorf("%w: want %d points, have %d", ErrParamCount, want, len(tokens))
	}
	out := make([]geo.Point, 0, want)
	for _, tok := range tokens {
		p, err := Coordinates(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Circle 解析 "x;y r"：圆心与正整数半径
func Circle(s string) (zone.Shape, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 2 {
		return zone.Shape{}, fmt.Errorf("circle: %w: want center and radius, have %d values", ErrParamCount, len(tokens))
	}
	c, err := Coordinates(tokens[0])
	if err != nil {
		return zone.Shape{}, fmt.Errorf("circle: %w", err)
	}
	r, err := strconv.Atoi(tokens[1])
	if err != nil {
		return zone.Shape{}, fmt.Errorf("circle: parsing radius: %w", err)
	}
	shape, err := zone.NewCircle(c, r)
	if err != nil {
		return zone.Shape{}, fmt.Errorf("circle: %w", err)
	}
	return shape, nil
}

func Triangle(s string) (zone.Shape, error) {
	v, err := points(s, 3)
	if err != nil {
		return zone.Shape{}, fmt.Errorf("triangle: %w", err)
	}
	return zone.NewTriangle(v[0], v[1], v[2]), nil
}

func Quadrilateral(s string) (zone.Shape, error) {
	v, err := points(s, 4)
	if err != nil {
		return zone.Shape{}, fmt.Errorf("quadrilateral: %w", err)
	}
	return zone.NewQuadrilateral(v[0], v[1], v[2], v[3]), nil
}

// Shape 按形状标签分派解析
func Shape(kind zone.ShapeKind, s string) (zone.Shape, error) {
	switch kind {
	case zone.KindCircle:
		return Circle(s)
	case zone.KindTriangle:
		return Triangle(s)
	case zone.KindQuadrilateral:
		return Quadrilateral(s)
	}
	return zone.Shape{}, fmt.Errorf("%w %q", zone.ErrUnknownShape, kind)
}
