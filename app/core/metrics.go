package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/moodlingo/moodlingo/pkg/metrics"
)

type Metrics struct {
	apiResponseTime   *prometheus.HistogramVec
	apiErrorCounter   *prometheus.CounterVec
	insightLatency    *prometheus.HistogramVec
	insightError      *prometheus.CounterVec
	emotionClassified *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:   metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:   metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		insightLatency:    metrics.NewHistogramVec("insight_latency", []string{"driver"}),
		insightError:      metrics.NewCounterVec("insight_error", []string{"kind"}),
		emotionClassified: metrics.NewCounterVec("emotion_classified", []string{"emotion"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) InsightTimer(driver string) *prometheus.Timer {
	return prometheus.NewTimer(m.insightLatency.WithLabelValues(driver))
}

func (m *Metrics) InsightErrorInc(kind string) {
	m.insightError.WithLabelValues(kind).Inc()
}

func (m *Metrics) EmotionClassifiedInc(emotion string) {
	m.emotionClassified.WithLabelValues(emotion).Inc()
}
