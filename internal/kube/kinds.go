package kube

import (
	"context"
	"fmt"
	"strings"

	"kubeui/internal/cluster"
)

type Kind string

const (
	KindNamespaces  Kind = "namespaces"
	KindPods        Kind = "pods"
	KindDeployments Kind = "deployments"
	KindServices    Kind = "services"
)

var Kinds = []Kind{KindNamespaces, KindPods, KindDeployments, KindServices}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown resource kind %q", s)
}

// Snapshot fetches and projects one kind. Namespaces ignore ns.
func Snapshot(ctx context.Context, c *cluster.Clients, ager Ager, kind Kind, ns string) (any, error) {
	switch kind {
	case KindNamespaces:
		return ListNamespaces(ctx, c)
	case KindPods:
		return ListPods(ctx, c, ager, ns)
	case KindDeployments:
		return ListDeployments(ctx, c, ns)
	case KindServices:
		return ListServices(ctx, c, ns)
	default:
		return nil, fmt.Errorf("unknown resource kind %q", kind)
	}
}
