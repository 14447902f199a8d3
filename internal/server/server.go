package server

import (
	"context"
	"crypto/subtle"
	"embed"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/utils/clock"

	"kubeui/internal/cluster"
	"kubeui/internal/kube"
	"kubeui/internal/kube/dto"
	"kubeui/internal/stream"
)

//go:embed ui_dist
var uiFS embed.FS

const defaultRequestTimeout = 15 * time.Second

type Options struct {
	// Token protects /api when non-empty.
	Token          string
	RequestTimeout time.Duration
	WatchInterval  time.Duration
	CORSOrigins    []string
	Clock          clock.PassiveClock
}

type Server struct {
	mgr     *cluster.Manager
	opts    Options
	ager    kube.Ager
	logger  logr.Logger
	watchWS *stream.SnapshotsWS
}

func New(mgr *cluster.Manager, opts Options, logger logr.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	s := &Server{
		mgr:    mgr,
		opts:   opts,
		ager:   kube.NewAger(opts.Clock),
		logger: logger,
	}
	s.watchWS = &stream.SnapshotsWS{
		Fetch:    s.snapshot,
		Interval: opts.WatchInterval,
		Timeout:  opts.RequestTimeout,
		Logger:   logger.WithName("watch"),
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.logger.WithName("http")))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		// probes carry no token
		api.Get("/health", s.handleHealth)

		api.Group(func(g chi.Router) {
			g.Use(s.authMiddleware)

			g.Get("/namespaces", s.handleList(kube.KindNamespaces))
			g.Get("/pods", s.handleList(kube.KindPods))
			g.Get("/deployments", s.handleList(kube.KindDeployments))
			g.Get("/services", s.handleList(kube.KindServices))
			g.Get("/watch", s.watchWS.ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/*", s.serveUI)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.opts.RequestTimeout)
	defer cancel()

	version, err := kube.ServerVersion(ctx, s.mgr.Clients())
	if err != nil {
		// the version endpoint may be blocked by RBAC; that alone is not unhealthy
		s.logger.V(1).Info("server version unavailable", "error", kube.Normalize(err))
		version = kube.UnknownVersion
	}
	writeJSON(w, http.StatusOK, dto.HealthDTO{Healthy: true, Version: version})
}

func (s *Server) handleList(kind kube.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.opts.RequestTimeout)
		defer cancel()

		ns := r.URL.Query().Get("ns")
		items, err := s.snapshot(ctx, kind, ns)
		if err != nil {
			s.logger.Info("upstream list failed", "kind", kind, "namespace", ns, "error", err.Error())
			writeError(w, err)
			return
		}

		if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
			writeYAML(w, s.logger, items)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// snapshot is the single path to the upstream for list routes and the
// websocket stream.
func (s *Server) snapshot(ctx context.Context, kind kube.Kind, ns string) (any, error) {
	start := time.Now()
	items, err := kube.Snapshot(ctx, s.mgr.Clients(), s.ager, kind, ns)
	observeUpstream(kind, start, err)
	return items, err
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.Token == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get("Authorization")
		if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimPrefix(token, "Bearer ")
		} else {
			token = r.URL.Query().Get("token")
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(s.opts.Token)) != 1 {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorDTO{Error: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serveUI(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "ui_dist/index.html"
	} else {
		path = "ui_dist/" + path
	}

	b, err := uiFS.ReadFile(path)
	if err != nil {
		b, err = uiFS.ReadFile("ui_dist/index.html")
		if err != nil {
			http.Error(w, "UI not built", http.StatusNotFound)
			return
		}
		path = "ui_dist/index.html"
	}

	w.Header().Set("Content-Type", contentTypeByPath(path))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func contentTypeByPath(p string) string {
	switch {
	case strings.HasSuffix(p, ".html"):
		return "text/html; charset=utf-8"
	case strings.HasSuffix(p, ".js"):
		return "application/javascript; charset=utf-8"
	case strings.HasSuffix(p, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(p, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
