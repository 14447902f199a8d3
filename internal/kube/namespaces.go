package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/cluster"
	"kubeui/internal/kube/dto"
)

func ListNamespaces(ctx context.Context, c *cluster.Clients) ([]dto.NamespaceSummaryDTO, error) {
	nsList, err := c.Clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}

	out := make([]dto.NamespaceSummaryDTO, 0, len(nsList.Items))
	for _, ns := range nsList.Items {
		out = append(out, NamespaceSummary(ns))
	}
	return out, nil
}

func NamespaceSummary(ns corev1.Namespace) dto.NamespaceSummaryDTO {
	return dto.NamespaceSummaryDTO{
		Name:   ns.Name,
		Status: string(ns.Status.Phase),
	}
}
