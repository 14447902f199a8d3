package kube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/kube/dto"
)

func TestDeploymentSummaryAllAbsent(t *testing.T) {
	got := DeploymentSummary(appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "api", Namespace: "prod"},
	})

	assert.Equal(t, dto.DeploymentSummaryDTO{Name: "api", Namespace: "prod"}, got)
}

func TestDeploymentSummaryPerFieldDefaults(t *testing.T) {
	replicas := int32(5)
	got := DeploymentSummary(appsv1.Deployment{
		Spec: appsv1.DeploymentSpec{Replicas: &replicas},
		Status: appsv1.DeploymentStatus{
			Replicas:        3,
			UpdatedReplicas: 2,
		},
	})

	assert.Equal(t, int32(3), got.DesiredReplicas, "desired comes from status")
	assert.Equal(t, int32(2), got.UpdatedReplicas)
	assert.Equal(t, int32(0), got.ReadyReplicas)
	assert.Equal(t, int32(0), got.AvailableReplicas)
}

func TestListDeployments(t *testing.T) {
	c, _ := newTestClients(t, &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "shop"},
		Status: appsv1.DeploymentStatus{
			Replicas:          3,
			ReadyReplicas:     2,
			AvailableReplicas: 2,
			UpdatedReplicas:   3,
		},
	})

	deps, err := ListDeployments(context.Background(), c, "all")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, dto.DeploymentSummaryDTO{
		Name:              "web",
		Namespace:         "shop",
		ReadyReplicas:     2,
		DesiredReplicas:   3,
		AvailableReplicas: 2,
		UpdatedReplicas:   3,
	}, deps[0])
}
