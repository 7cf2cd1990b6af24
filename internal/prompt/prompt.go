// 包 prompt：终端问答；每次提问写出问题并读取一行
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoInput = errors.New("no input")

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) line() (string, bool, error) {
	if p.in.Scan() {
		return strings.TrimRight(p.in.Text(), "\r"), true, nil
	}
	return "", false, p.in.Err()
}

// Out 返回问题输出端，调用方可写入不需要回答的提示行
func (p *Prompter) Out() io.Writer { return p.out }

// Ask 输出问题并读取一行；输入结束时返回 ErrNoInput
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return "", err
	}
	s, ok, err := p.line()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoInput, question)
	}
	return s, nil
}

// AskOptional 与 Ask 相同，但空行或输入结束时返回 nil
func (p *Prompter) AskOptional(question string) (*string, error) {
	s, err := p.Ask(question)
	if errors.Is(err, ErrNoInput) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

// AskUntil 反复提问直到 parse 成功；每次失败写出错误信息
// 约束：输入结束时返回 ErrNoInput，不会无限循环
func AskUntil[T any](p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	for {
		s, err := p.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Invalid input: %v\n", err)
	}
}
