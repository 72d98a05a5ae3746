package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func metricsRouter() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}

// serveMetrics blocks serving /metrics on addr.
func serveMetrics(addr string, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    addr,
		Handler: metricsRouter(),
	}
	logger.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
