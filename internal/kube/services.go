package kube

import (
	"context"
	"strconv"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/cluster"
	"kubeui/internal/kube/dto"
)

func listServices(ctx context.Context, c *cluster.Clients, namespace string) ([]corev1.Service, error) {
	services, err := c.Clientset.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, err
	}
	return services.Items, nil
}

func ListServices(ctx context.Context, c *cluster.Clients, ns string) ([]dto.ServiceSummaryDTO, error) {
	services, err := List(ctx, c, listServices, ns)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceSummaryDTO, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceSummary(svc))
	}
	return out, nil
}

func ServiceSummary(svc corev1.Service) dto.ServiceSummaryDTO {
	ports := make([]string, 0, len(svc.Spec.Ports))
	for _, p := range svc.Spec.Ports {
		ports = append(ports, FormatServicePort(p))
	}

	return dto.ServiceSummaryDTO{
		Name:      svc.Name,
		Namespace: svc.Namespace,
		Type:      string(svc.Spec.Type),
		ClusterIP: svc.Spec.ClusterIP,
		Ports:     ports,
	}
}

// FormatServicePort renders "<port>[→<nodePort>]/<protocol>".
func FormatServicePort(p corev1.ServicePort) string {
	out := strconv.Itoa(int(p.Port))
	if p.NodePort != 0 {
		out += "→" + strconv.Itoa(int(p.NodePort))
	}
	proto := string(p.Protocol)
	if proto == "" {
		proto = string(corev1.ProtocolTCP)
	}
	return out + "/" + proto
}
