// 包 incident：事故记录与事故类型
package incident

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/geo"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type Type string

const (
	Fire      Type = "fire"
	GasLeak   Type = "gas leak"
	CatOnTree Type = "cat on the tree"
)

var ErrUnknownType = errors.New("unknown incident type")

// 文档注释：解析事故类型
// 背景：输入来自交互终端，统一做大小写折叠与首尾空白裁剪；同时接受展示文本（"gas leak"）与连字符标签（"gas-leak"）。
// 约束：集合开放但未知值一律拒绝，返回 ErrUnknownType。
func ParseType(s string) (Type, error) {
	v := cases.Fold().String(strings.TrimSpace(s))
	switch v {
	case "fire":
		return Fire, nil
	case "gas leak", "gas-leak":
		return GasLeak, nil
	case "cat on the tree", "cat-in-tree", "cat in tree":
		return CatOnTree, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownType, s)
}

// 文档注释：事故
// 背景：ID 仅用于日志关联；Phone 与 Type 为可选字段，nil 是合法终态（报告中显示 N/A）。
type Incident struct {
	ID          uuid.UUID
	Coordinates geo.Point
	Description string
	Phone       *string
	Type        *Type
}

func New(at geo.Point, description string, phone *string, typ *Type) Incident {
	return Incident{
		ID:          uuid.New(),
		Coordinates: at,
		Description: description,
		Phone:       phone,
		Type:        typ,
	}
}
