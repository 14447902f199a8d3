package kube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"kubeui/internal/kube/dto"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Pods ")
	require.NoError(t, err)
	assert.Equal(t, KindPods, k)

	_, err = ParseKind("secrets")
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	c, _ := newTestClients(t,
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "prod"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "p", Namespace: "prod"}},
	)
	ctx := context.Background()

	nss, err := Snapshot(ctx, c, testAger(), KindNamespaces, "ignored")
	require.NoError(t, err)
	assert.IsType(t, []dto.NamespaceSummaryDTO{}, nss)

	pods, err := Snapshot(ctx, c, testAger(), KindPods, "prod")
	require.NoError(t, err)
	require.IsType(t, []dto.PodSummaryDTO{}, pods)
	assert.Len(t, pods.([]dto.PodSummaryDTO), 1)

	deps, err := Snapshot(ctx, c, testAger(), KindDeployments, "")
	require.NoError(t, err)
	assert.Empty(t, deps)

	svcs, err := Snapshot(ctx, c, testAger(), KindServices, "")
	require.NoError(t, err)
	assert.Empty(t, svcs)

	_, err = Snapshot(ctx, c, testAger(), Kind("nodes"), "")
	assert.Error(t, err)
}
