package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"sigs.k8s.io/yaml"

	"kubeui/internal/kube"
	"kubeui/internal/kube/dto"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError is the only way an upstream failure reaches the client.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, kube.StatusCode(err), dto.ErrorDTO{Error: kube.Normalize(err)})
}

func writeYAML(w http.ResponseWriter, logger logr.Logger, v any) {
	b, err := yaml.Marshal(v)
	if err != nil {
		logger.Error(err, "failed to encode YAML response")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorDTO{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func accessLog(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.V(1).Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start).String(),
					"requestID", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
