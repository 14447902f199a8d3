package kube

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/cluster"
)

// AllNamespaces is the query value that selects a cluster-wide listing.
const AllNamespaces = "all"

// ListFunc performs one upstream snapshot list in the given namespace.
// An empty namespace lists across all namespaces.
type ListFunc[T any] func(ctx context.Context, c *cluster.Clients, namespace string) ([]T, error)

// Scope maps the namespace query value onto the list scope: empty or "all"
// is cluster-wide, anything else is that exact namespace.
func Scope(ns string) string {
	if ns == "" || ns == AllNamespaces {
		return metav1.NamespaceAll
	}
	return ns
}

// List runs list once in the scope selected by ns. Upstream errors are
// returned as is.
func List[T any](ctx context.Context, c *cluster.Clients, list ListFunc[T], ns string) ([]T, error) {
	return list(ctx, c, Scope(ns))
}
