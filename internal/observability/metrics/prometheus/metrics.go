package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	FamiliesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_families_issued_total",
			Help: "Number of token families created",
		},
	)

	Rotations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_rotations_total",
			Help: "Number of rotation attempts by outcome",
		},
		[]string{"result"},
	)

	ReplaysDetected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_replays_detected_total",
			Help: "Number of stale-token replays detected",
		},
	)

	FamiliesRevoked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_families_revoked_total",
			Help: "Number of families revoked by trigger",
		},
		[]string{"trigger"},
	)

	SweeperDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_sweeper_deleted_rows_total",
			Help: "Number of expired ledger rows removed by the sweeper",
		},
	)
)

type Metric struct {
	srv *http.Server
}

func New(port int) *Metric {
	prometheus.MustRegister(
		FamiliesIssued,
		Rotations,
		ReplaysDetected,
		FamiliesRevoked,
		SweeperDeleted,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metric{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (m *Metric) Start(ctx context.Context) {
	go func() {
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Error("metrics server failed", zap.Error(err))
		}
	}()

	zap.L().Info("Metrics server has been started", zap.String("addr", m.srv.Addr))
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := m.srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Debug("Error shutting down metrics server", zap.Error(err))
	}
	zap.L().Info("Metrics server has been stopped")
}
