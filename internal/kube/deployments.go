package kube

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/cluster"
	"kubeui/internal/kube/dto"
)

func listDeployments(ctx context.Context, c *cluster.Clients, namespace string) ([]appsv1.Deployment, error) {
	deps, err := c.Clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return deps.Items, nil
}

func ListDeployments(ctx context.Context, c *cluster.Clients, ns string) ([]dto.DeploymentSummaryDTO, error) {
	deps, err := List(ctx, c, listDeployments, ns)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DeploymentSummaryDTO, 0, len(deps))
	for _, d := range deps {
		out = append(out, DeploymentSummary(d))
	}
	return out, nil
}

// DeploymentSummary reads the replica counters from the status; each one is
// zero when the upstream left it unset.
func DeploymentSummary(d appsv1.Deployment) dto.DeploymentSummaryDTO {
	return dto.DeploymentSummaryDTO{
		Name:              d.Name,
		Namespace:         d.Namespace,
		ReadyReplicas:     nonNegative(d.Status.ReadyReplicas),
		DesiredReplicas:   nonNegative(d.Status.Replicas),
		AvailableReplicas: nonNegative(d.Status.AvailableReplicas),
		UpdatedReplicas:   nonNegative(d.Status.UpdatedReplicas),
	}
}

func nonNegative(v int32) int32 {
	if v < 0 {
		return 0
	}
	return v
}
