package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"

	"kubeui/internal/kube"
	"kubeui/internal/kube/dto"
)

const (
	defaultInterval = 10 * time.Second
	minInterval     = 2 * time.Second
	maxInterval     = 5 * time.Minute
	pingInterval    = 20 * time.Second
	writeWait       = 5 * time.Second
	defaultTimeout  = 15 * time.Second
)

var defaultKinds = []kube.Kind{kube.KindPods, kube.KindDeployments, kube.KindServices}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FetchFunc returns the projected snapshot of one kind.
type FetchFunc func(ctx context.Context, kind kube.Kind, ns string) (any, error)

// Frame is one pushed snapshot. Exactly one of Items or Error is set.
type Frame struct {
	Kind  kube.Kind `json:"kind"`
	Items any       `json:"items,omitempty"`
	Error string    `json:"error,omitempty"`
}

// SnapshotsWS pushes a fresh snapshot of every requested kind each interval.
// Kinds are fetched independently and frames are sent as they complete. A
// kind still in flight is skipped on the next tick without holding back the
// others.
type SnapshotsWS struct {
	Fetch    FetchFunc
	Interval time.Duration
	// Timeout bounds every single fetch.
	Timeout time.Duration
	Logger  logr.Logger
}

func (h *SnapshotsWS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ns := q.Get("ns")

	kinds, err := parseKinds(q.Get("kinds"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(dto.ErrorDTO{Error: err.Error()})
		return
	}
	interval := parseInterval(q.Get("interval"), h.Interval)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// reads only serve to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	frames := make(chan Frame)
	inFlight := make(map[kube.Kind]bool, len(kinds))
	h.publish(ctx, kinds, ns, inFlight, frames)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			delete(inFlight, f.Kind)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(f); err != nil {
				h.Logger.V(1).Info("watch client write failed", "error", err.Error())
				return
			}
		case <-ticker.C:
			h.publish(ctx, kinds, ns, inFlight, frames)
		case <-ping.C:
			_ = conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(2*time.Second))
		}
	}
}

// publish starts a fetch for every kind not already in flight. inFlight is
// owned by the ServeHTTP loop.
func (h *SnapshotsWS) publish(ctx context.Context, kinds []kube.Kind, ns string, inFlight map[kube.Kind]bool, frames chan<- Frame) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	for _, k := range kinds {
		if inFlight[k] {
			continue
		}
		inFlight[k] = true
		go func(kind kube.Kind) {
			f := Frame{Kind: kind}
			fetchCtx, cancel := context.WithTimeout(ctx, timeout)
			items, err := h.Fetch(fetchCtx, kind, ns)
			cancel()
			if err != nil {
				f.Error = kube.Normalize(err)
			} else {
				f.Items = items
			}
			select {
			case frames <- f:
			case <-ctx.Done():
			}
		}(k)
	}
}

func parseKinds(raw string) ([]kube.Kind, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultKinds, nil
	}
	seen := map[kube.Kind]bool{}
	var out []kube.Kind
	for _, part := range strings.Split(raw, ",") {
		k, err := kube.ParseKind(part)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

func parseInterval(raw string, fallback time.Duration) time.Duration {
	d := fallback
	if raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			d = parsed
		}
	}
	if d <= 0 {
		d = defaultInterval
	}
	if d < minInterval {
		return minInterval
	}
	if d > maxInterval {
		return maxInterval
	}
	return d
}
