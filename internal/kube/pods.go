package kube

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/cluster"
	"kubeui/internal/kube/dto"
)

func listPods(ctx context.Context, c *cluster.Clients, namespace string) ([]corev1.Pod, error) {
	pods, err := c.Clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return pods.Items, nil
}

func ListPods(ctx context.Context, c *cluster.Clients, ager Ager, ns string) ([]dto.PodSummaryDTO, error) {
	pods, err := List(ctx, c, listPods, ns)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PodSummaryDTO, 0, len(pods))
	for _, p := range pods {
		out = append(out, PodSummary(p, ager))
	}
	return out, nil
}

// PodSummary projects a pod using its first container status only.
func PodSummary(p corev1.Pod, ager Ager) dto.PodSummaryDTO {
	var first *corev1.ContainerStatus
	if len(p.Status.ContainerStatuses) > 0 {
		first = &p.Status.ContainerStatuses[0]
	}

	var restarts int32
	if first != nil && first.RestartCount > 0 {
		restarts = first.RestartCount
	}

	return dto.PodSummaryDTO{
		Name:       p.Name,
		Namespace:  p.Namespace,
		Phase:      string(p.Status.Phase),
		NodeName:   p.Spec.NodeName,
		Restarts:   restarts,
		ReadyLabel: ReadyLabel(first),
		Age:        ager.FromMeta(p.CreationTimestamp),
	}
}

// ReadyLabel renders "Yes", "No (<reason>)" or "-" when there is no status.
func ReadyLabel(cs *corev1.ContainerStatus) string {
	if cs == nil {
		return noValue
	}
	if cs.Ready {
		return "Yes"
	}
	return "No (" + notReadyReason(cs.State) + ")"
}

// notReadyReason prefers the waiting reason over the terminated one.
func notReadyReason(s corev1.ContainerState) string {
	if s.Waiting != nil && s.Waiting.Reason != "" {
		return s.Waiting.Reason
	}
	if s.Terminated != nil && s.Terminated.Reason != "" {
		return s.Terminated.Reason
	}
	return ""
}
