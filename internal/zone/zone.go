package zone

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/geo"
)

type DangerLevel string

const (
	DangerLow    DangerLevel = "low"
	DangerMedium DangerLevel = "medium"
	DangerHigh   DangerLevel = "high"
)

var ErrUnknownDangerLevel = errors.New("unknown danger level")

// ParseDangerLevel 接受 low / medium / high；旧数据中的拼写 hight 归一为 high
func ParseDangerLevel(s string) (DangerLevel, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "low":
		return DangerLow, nil
	case "medium":
		return DangerMedium, nil
	case "high", "hight":
		return DangerHigh, nil
	}
	return "", fmt.Errorf("%w %q, expected 'low', 'medium' or 'high'", ErrUnknownDangerLevel, s)
}

// 文档注释：区域（名称、联系电话、应急部门代码、危险等级 + 形状）
// 背景：作为值类型由单区域或城市区域列表持有，不共享可变状态。
// 约束：Shape 必须由 NewCircle/NewTriangle/NewQuadrilateral 构造；零值 Zone 不包含任何点，定位时被跳过。
type Zone struct {
	Name     string
	Phone    string
	DeptCode string
	Danger   DangerLevel
	Shape    Shape
}

func (z Zone) Contains(p geo.Point) bool { return z.Shape.Contains(p) }

func (z Zone) Centroid() geo.Point { return z.Shape.Centroid() }
