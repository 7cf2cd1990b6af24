// 包 phone：电话号码展示掩码
package phone

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	tollFreeMask = "8 (xxx) xxx xx xx"
	mobileMask   = "+7 xxx xxx-xx-xx"
)

// 文档注释：按俄罗斯号码习惯格式化
// 背景：原始输入长度（字符数）为 11 或 12 时才尝试格式化；仅保留数字后取第 2-4 位作为运营商代码。
// 11 位且以 8 开头、代码为 800/495 时使用 "8 (xxx) xxx xx xx"；11 位且以 7 或 8 开头时使用 "+7 xxx xxx-xx-xx"；
// 其余情况原样返回。掩码中的 x 依次由第 2 位起的数字填充。
// 约束：纯函数；不做合法性校验，无法格式化时返回原串。
func Mask(s string) string {
	if n := utf8.RuneCountInString(s); n > 12 || n < 11 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 4 {
		return s
	}
	op, err := strconv.Atoi(digits[1:4])
	if err != nil || op == 0 {
		return s
	}

	var mask string
	switch {
	case len(digits) == 11 && digits[0] == '8' && (op == 800 || op == 495):
		mask = tollFreeMask
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
		mask = mobileMask
	default:
		return s
	}

	out := []byte(mask)
	idx := 1
	for i := range out {
		if out[i] != 'x' {
			continue
		}
		if idx >= len(digits) {
			break
		}
		out[i] = digits[idx]
		idx++
	}
	return string(out)
}
