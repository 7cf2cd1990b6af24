package prompt

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("3;4\r\nsecond\n"), &out)

	got, err := p.Ask("Enter the accident coordinates:")
	if err != nil || got != "3;4" {
		t.Fatalf("Ask = %q, %v", got, err)
	}
	if got, _ := p.Ask("next"); got != "second" {
		t.Fatalf("second Ask = %q", got)
	}
	if _, err := p.Ask("more"); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if want := "Enter the accident coordinates:\nnext\nmore\n"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestAskOptional(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("\n89347362826\n"), &bytes.Buffer{})
	v, err := p.AskOptional("phone")
	if err != nil || v != nil {
		t.Fatalf("blank line: %v %v", v, err)
	}
	v, err = p.AskOptional("phone")
	if err != nil || v == nil || *v != "89347362826" {
		t.Fatalf("value: %v %v", v, err)
	}
	v, err = p.AskOptional("type")
	if err != nil || v != nil {
		t.Fatalf("eof: %v %v", v, err)
	}
}

func TestAskUntil(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("abc\n-1\n7\n"), &out)
	n, err := AskUntil(p, "radius", func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err == nil && v <= 0 {
			return 0, errors.New("must be positive")
		}
		return v, err
	})
	if err != nil || n != 7 {
		t.Fatalf("AskUntil = %d, %v", n, err)
	}
	if c := strings.Count(out.String(), "Invalid input"); c != 2 {
		t.Fatalf("expected 2 retry messages, got %d: %q", c, out.String())
	}

	p = New(strings.NewReader("x\n"), &bytes.Buffer{})
	if _, err := AskUntil(p, "radius", strconv.Atoi); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}
