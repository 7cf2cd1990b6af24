package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LocateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_locate_total",
		Help: "Total number of incident locations by outcome (matched, nearest, not_matched)",
	}, []string{"outcome"})
	LocateErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_locate_errors_total",
		Help: "Total number of locate calls rejected because the zone list was empty",
	})
	LocateDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_locate_duration_ms",
		Help:    "Locate duration in milliseconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})
	ZoneChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_zone_checks_total",
		Help: "Total number of single-zone checks by shape kind",
	}, []string{"shape"})
	CatalogZones = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_catalog_zones",
		Help: "Number of zones in the loaded city catalog",
	})
)

func init() {
	prometheus.MustRegister(LocateTotal)
	prometheus.MustRegister(LocateErrorsTotal)
	prometheus.MustRegister(LocateDurationMs)
	prometheus.MustRegister(ZoneChecksTotal)
	prometheus.MustRegister(CatalogZones)
}

// 文档注释：把默认注册表写入文本文件
// 背景：程序为一次性终端进程，不监听端口；以 Prometheus 文本格式写文件，供 node_exporter textfile 收集器读取。
// 约束：path 为空时不写；写入为先写临时文件再改名，由 client_golang 保证原子性。
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
