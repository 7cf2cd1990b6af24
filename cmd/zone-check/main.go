// 单区域模式：录入一个区域与一次事故，判断事故是否在该区域内
package main

import (
	"context"
	"fmt"
	"os"

	"dispatch/internal/config"
	"dispatch/internal/dispatch"
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

	p := prompt.New(os.Stdin, os.Stdout)
	z, err := dispatch.ReadZone(p)
	if err != nil {
		l.Error("zone_input_error", "err", err)
		os.Exit(1)
	}
	inc, err := dispatch.ReadIncident(p, cfg.MaskApplicant)
	if err != nil {
		l.Error("incident_input_error", "err", err)
		os.Exit(1)
	}

	out, _ := dispatch.HandleZone(context.Background(), l, z, inc, cfg.FallbackNumber)
	fmt.Println(out)

	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		l.Warn("metrics_textfile_error", "path", cfg.MetricsTextfile, "err", err)
	}
}
