// 包 geo：整数网格上的几何原语（点、叉积、平方距离），供区域判定与最近区域排序复用
package geo

import (
	"errors"
	"fmt"
)

// 网格坐标点：无单位、可为负；值类型，构造后不可变
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("%d;%d", p.X, p.Y) }

// 坐标分量与半径的绝对值上限；在此范围内叉积与平方距离按 int64 计算不会溢出
const MaxAbs = 1<<30 - 1

var ErrCoordinateRange = errors.New("coordinate out of range")

// InRange 判断单个分量是否在 [-MaxAbs, MaxAbs] 内
func InRange(v int) bool { return v >= -MaxAbs && v <= MaxAbs }

// 文档注释：校验点坐标范围
// 背景：输入边界（终端、目录文件、数据库）在构造形状前调用，超出范围的值会让叉积或平方距离失真。
// 约束：返回包装 ErrCoordinateRange 的错误，指明第一个越界的点。
func CheckRange(points ...Point) error {
	for _, p := range points {
		if !InRange(p.X) || !InRange(p.Y) {
			return fmt.Errorf("%w: %s, limit is ±%d", ErrCoordinateRange, p, MaxAbs)
		}
	}
	return nil
}

// 文档注释：边判定行列式
// 背景：计算 (p-a) 与 (b-a) 的二维有向面积，符号表示 p 位于边 a→b 的哪一侧；0 表示共线。
// 约束：各分量在 MaxAbs 内时结果精确。
func Cross(p, a, b Point) int64 {
	return int64(p.X-a.X)*int64(b.Y-a.Y) - int64(b.X-a.X)*int64(p.Y-a.Y)
}

// 文档注释：平方欧氏距离
// 背景：圆形判定与最近区域排序统一使用平方距离，整数输入下全程精确，不引入开方误差。
func DistanceSquared(a, b Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	return dx*dx + dy*dy
}
