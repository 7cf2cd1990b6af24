// 包 config：进程配置（.env + 环境变量），所有入口共用
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// CatalogSource 区域目录来源
type CatalogSource string

const (
	SourceBuiltin  CatalogSource = "builtin"
	SourceFile     CatalogSource = "file"
	SourcePostgres CatalogSource = "postgres"
)

const DefaultFallbackNumber = "8 (800) 847 38 24"

type Config struct {
	CatalogSource   CatalogSource
	CatalogPath     string
	City            string
	FallbackNumber  string
	MetricsTextfile string
	// MaskApplicant 为 false 时申请人号码按输入原样保存
	MaskApplicant bool
}

// 文档注释：加载 .env 后读取环境变量
// 背景：.env 与 data/env/.env 均可选，缺失时忽略；已存在的环境变量不会被 .env 覆盖。
// 约束：DISPATCH_CATALOG_SOURCE=file 时必须给出 DISPATCH_CATALOG_PATH；postgres 时必须给出 DISPATCH_CITY。
func Load() (Config, error) {
	LoadDotenv()
	return FromEnv()
}

// LoadDotenv 只加载 .env 与 data/env/.env（均可选），不做配置校验；供只需要 PG_* 等变量的工具使用
func LoadDotenv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
}

// FromEnv 只读环境变量，不触碰 .env
func FromEnv() (Config, error) {
	cfg := Config{
		CatalogSource:   CatalogSource(strings.ToLower(Getenv("DISPATCH_CATALOG_SOURCE", string(SourceBuiltin)))),
		CatalogPath:     os.Getenv("DISPATCH_CATALOG_PATH"),
		City:            os.Getenv("DISPATCH_CITY"),
		FallbackNumber:  Getenv("DISPATCH_FALLBACK_NUMBER", DefaultFallbackNumber),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		MaskApplicant:   true,
	}
	if v := os.Getenv("DISPATCH_MASK_APPLICANT"); v != "" {
		b, err := Parse[bool](v)
		if err != nil {
			return Config{}, fmt.Errorf("DISPATCH_MASK_APPLICANT: %w", err)
		}
		cfg.MaskApplicant = b
	}

	switch cfg.CatalogSource {
	case SourceBuiltin:
	case SourceFile:
		if cfg.CatalogPath == "" {
			return Config{}, fmt.Errorf("environment variable %q must be specified when catalog source is %q", "DISPATCH_CATALOG_PATH", SourceFile)
		}
	case SourcePostgres:
		if cfg.City == "" {
			return Config{}, fmt.Errorf("environment variable %q must be specified when catalog source is %q", "DISPATCH_CITY", SourcePostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown catalog source %q, expected 'builtin', 'file' or 'postgres'", cfg.CatalogSource)
	}
	return cfg, nil
}

// Getenv 返回去除首尾空白后的值，空时返回 def
func Getenv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

// Parse 将环境变量文本解析为目标类型
func Parse[T any](v string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return any(v).(T), nil
	case bool:
		val, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return zero, fmt.Errorf("failed to parse %q as bool: %w", v, err)
		}
		return any(val).(T), nil
	case int:
		val, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return zero, fmt.Errorf("failed to parse %q as int: %w", v, err)
		}
		return any(val).(T), nil
	}

	return zero, fmt.Errorf("unsupported environment variable type %T", zero)
}

// IntEnv 读取整数环境变量，缺失或非法时返回 def
func IntEnv(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := Parse[int](v)
	if err != nil {
		return def
	}
	return n
}
