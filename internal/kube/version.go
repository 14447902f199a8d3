package kube

import (
	"context"

	"k8s.io/apimachinery/pkg/version"

	"kubeui/internal/cluster"
)

const UnknownVersion = "unknown"

type versionResult struct {
	info *version.Info
	err  error
}

// ServerVersion returns the upstream git version. Discovery takes no context,
// so the call runs aside and ctx bounds how long the caller waits for it.
func ServerVersion(ctx context.Context, c *cluster.Clients) (string, error) {
	done := make(chan versionResult, 1)
	go func() {
		info, err := c.Discovery.ServerVersion()
		done <- versionResult{info: info, err: err}
	}()

	var res versionResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-done:
	}

	if res.err != nil {
		return "", res.err
	}
	if res.info == nil || res.info.GitVersion == "" {
		return UnknownVersion, nil
	}
	return res.info.GitVersion, nil
}
