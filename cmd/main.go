// 程序入口：城市模式。读取配置与区域目录，录入一次事故并输出分派报告
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/catalog"
	"dispatch/internal/config"
	"dispatch/internal/dispatch"
	"dispatch/internal/locate"
	"dispatch/internal/logger"
	"dispatch/internal/metrics"
	"dispatch/internal/prompt"
)

func main() {
	cfg, err := config.Load()
	l := logger.Setup()
	if err != nil {
		l.Error("config_error", "err", err)
		os.Exit(1)
	}
	l.Debug("config_ok", "source", cfg.CatalogSource, "city", cfg.City, "path", cfg.CatalogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	city, err := catalog.Load(ctx, cfg)
	if err != nil {
		l.Error("catalog_error", "err", err)
		os.Exit(1)
	}
	svc := dispatch.NewService(city, l)

	inc, err := dispatch.ReadIncident(prompt.New(os.Stdin, os.Stdout), cfg.MaskApplicant)
	if err != nil {
		l.Error("input_error", "err", err)
		os.Exit(1)
	}

	out, _, err := svc.HandleCity(ctx, inc)
	if out != "" {
		fmt.Println()
		fmt.Println(out)
	}
	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		l.Warn("metrics_textfile_error", "path", cfg.MetricsTextfile, "err", err)
	}
	if err != nil && !errors.Is(err, locate.ErrEmptyZoneList) {
		os.Exit(1)
	}
}
