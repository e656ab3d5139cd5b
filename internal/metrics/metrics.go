// Package metrics 定义业务指标，在 /metrics 暴露。
package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_board_uploads_total",
			Help: "Upload attempts by outcome",
		},
		[]string{"status"},
	)
	UploadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "image_board_upload_duration_seconds",
			Help:    "Time spent in the upload pipeline",
			Buckets: prometheus.DefBuckets,
		},
	)
	Enrichment = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_board_enrichment_total",
			Help: "Derived data runs (exif, deliver) by outcome",
		},
		[]string{"kind", "status"},
	)
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_board_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"status"},
	)
	Signups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_board_signups_total",
			Help: "Signup attempts by outcome",
		},
		[]string{"status"},
	)
	Comments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "image_board_comments_total",
			Help: "Comments posted",
		},
	)
	Favorites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_board_favorites_total",
			Help: "Favorite requests by outcome",
		},
		[]string{"status"},
	)
)

var registerOnce sync.Once

// RegisterMetrics 可以重复调用
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Uploads, UploadDuration, Enrichment, Logins, Signups, Comments, Favorites)
	})
}

// Handler 以 gin 路由形式暴露 promhttp
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
