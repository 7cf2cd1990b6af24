// 包 dispatch：事故分派服务；在纯定位逻辑外包一层日志与指标，并生成终端报告
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/incident"
	"dispatch/internal/locate"
	"dispatch/internal/metrics"
	"dispatch/internal/report"
	"dispatch/internal/zone"
)

// 文档注释：分派服务
// 背景：持有只读的城市目录；除 prometheus 计数器外无可变状态，可被多个 goroutine 共享。
type Service struct {
	city locate.City
	log  *slog.Logger
}

func NewService(city locate.City, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	metrics.CatalogZones.Set(float64(len(city.Zones)))
	return &Service{city: city, log: log.With("city", city.Name)}
}

func (s *Service) City() locate.City { return s.city }

// 文档注释：城市模式处理一次事故
// 背景：按区域列表定位；命中/最近均计入 dispatch_locate_total，空列表计入 dispatch_locate_errors_total。
// 返回：完整的城市报告文本、定位结果；空列表时报告仍可打印，错误为 ErrEmptyZoneList。
func (s *Service) HandleCity(ctx context.Context, inc incident.Incident) (string, locate.Result, error) {
	if err := ctx.Err(); err != nil {
		return "", locate.Result{}, err
	}
	start := time.Now()
	res, err := s.city.Locate(inc.Coordinates)
	metrics.LocateDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000)

	l := s.log.With("incident", inc.ID.String(), "at", inc.Coordinates.String())
	switch {
	case errors.Is(err, locate.ErrEmptyZoneList):
		metrics.LocateErrorsTotal.Inc()
		l.Warn("locate_no_zones")
	case err != nil:
		metrics.LocateErrorsTotal.Inc()
		l.Error("locate_error", "err", err)
	case res.Outcome == locate.Matched:
		metrics.LocateTotal.WithLabelValues(res.Outcome.String()).Inc()
		l.Info("locate_matched", "zone", res.Zone.Name)
	default:
		metrics.LocateTotal.WithLabelValues(res.Outcome.String()).Inc()
		l.Info("locate_nearest", "zone", res.Zone.Name, "dist2", res.DistanceSquared)
	}
	return report.City(s.city, inc, res, err), res, err
}

// HandleZone 单区域模式，委托给包级 HandleZone，日志带上服务的城市字段
func (s *Service) HandleZone(ctx context.Context, z zone.Zone, inc incident.Incident, fallback string) (string, locate.Result) {
	return HandleZone(ctx, s.log, z, inc, fallback)
}

// 文档注释：单区域直判
// 背景：只判定给定区域，未命中时报告提示转接 fallback 号码；不需要城市目录，也不改动 dispatch_catalog_zones。
func HandleZone(ctx context.Context, log *slog.Logger, z zone.Zone, inc incident.Incident, fallback string) (string, locate.Result) {
	if log == nil {
		log = slog.Default()
	}
	res := locate.Check(z, inc.Coordinates)
	metrics.ZoneChecksTotal.WithLabelValues(string(z.Shape.Kind())).Inc()
	metrics.LocateTotal.WithLabelValues(res.Outcome.String()).Inc()
	log.InfoContext(ctx, "zone_checked",
		"incident", inc.ID.String(),
		"zone", z.Name,
		"shape", string(z.Shape.Kind()),
		"outcome", res.Outcome.String(),
	)
	return report.Direct(z, inc, res, fallback), res
}
