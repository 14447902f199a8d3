package kube

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestPodSummaryNoContainerStatuses(t *testing.T) {
	p := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "shop"},
		Status:     corev1.PodStatus{Phase: corev1.PodPending, ContainerStatuses: []corev1.ContainerStatus{}},
	}

	got := PodSummary(p, testAger())
	assert.Equal(t, "-", got.ReadyLabel)
	assert.Equal(t, int32(0), got.Restarts)
	assert.Equal(t, "Pending", got.Phase)
	assert.Equal(t, "-", got.Age)
}

func TestPodSummaryReady(t *testing.T) {
	p := corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              "web-0",
			Namespace:         "shop",
			CreationTimestamp: metav1.NewTime(testNow.Add(-90 * time.Minute)),
		},
		Spec: corev1.PodSpec{NodeName: "node-1"},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{
				{Name: "app", Ready: true, RestartCount: 3},
			},
		},
	}

	got := PodSummary(p, testAger())
	assert.Equal(t, "web-0", got.Name)
	assert.Equal(t, "shop", got.Namespace)
	assert.Equal(t, "Running", got.Phase)
	assert.Equal(t, "node-1", got.NodeName)
	assert.Equal(t, "Yes", got.ReadyLabel)
	assert.Equal(t, int32(3), got.Restarts)
	assert.Equal(t, "1h", got.Age)
}

func TestReadyLabel(t *testing.T) {
	tests := []struct {
		name string
		cs   *corev1.ContainerStatus
		want string
	}{
		{"no status", nil, "-"},
		{"ready", &corev1.ContainerStatus{Ready: true}, "Yes"},
		{
			"ready ignores stale reason",
			&corev1.ContainerStatus{Ready: true, State: corev1.ContainerState{
				Waiting: &corev1.ContainerStateWaiting{Reason: "ContainerCreating"},
			}},
			"Yes",
		},
		{
			"waiting",
			&corev1.ContainerStatus{State: corev1.ContainerState{
				Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
			}},
			"No (CrashLoopBackOff)",
		},
		{
			"terminated",
			&corev1.ContainerStatus{State: corev1.ContainerState{
				Terminated: &corev1.ContainerStateTerminated{Reason: "Completed"},
			}},
			"No (Completed)",
		},
		{
			"waiting wins over terminated",
			&corev1.ContainerStatus{State: corev1.ContainerState{
				Waiting:    &corev1.ContainerStateWaiting{Reason: "ImagePullBackOff"},
				Terminated: &corev1.ContainerStateTerminated{Reason: "Error"},
			}},
			"No (ImagePullBackOff)",
		},
		{
			"empty waiting reason falls through",
			&corev1.ContainerStatus{State: corev1.ContainerState{
				Waiting:    &corev1.ContainerStateWaiting{},
				Terminated: &corev1.ContainerStateTerminated{Reason: "OOMKilled"},
			}},
			"No (OOMKilled)",
		},
		{"no state", &corev1.ContainerStatus{}, "No ()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadyLabel(tt.cs))
		})
	}
}

func TestPodSummaryUsesFirstContainerOnly(t *testing.T) {
	p := corev1.Pod{
		Status: corev1.PodStatus{ContainerStatuses: []corev1.ContainerStatus{
			{Name: "app", Ready: true, RestartCount: 1},
			{Name: "sidecar", Ready: false, RestartCount: 9, State: corev1.ContainerState{
				Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
			}},
		}},
	}

	got := PodSummary(p, testAger())
	assert.Equal(t, "Yes", got.ReadyLabel)
	assert.Equal(t, int32(1), got.Restarts)
}

func TestPodSummaryEmptyObject(t *testing.T) {
	got := PodSummary(corev1.Pod{}, testAger())
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Namespace)
	assert.Empty(t, got.Phase)
	assert.Empty(t, got.NodeName)
	assert.Equal(t, "-", got.ReadyLabel)
	assert.Equal(t, "-", got.Age)
}

func TestListPods(t *testing.T) {
	c, _ := newTestClients(t, &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              "api-7d9",
			Namespace:         "prod",
			CreationTimestamp: metav1.NewTime(testNow.Add(-72 * time.Hour)),
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{{
				RestartCount: 2,
				State: corev1.ContainerState{
					Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
				},
			}},
		},
	})

	pods, err := ListPods(context.Background(), c, testAger(), "prod")
	require.NoError(t, err)
	require.Len(t, pods, 1)
	assert.Equal(t, "No (CrashLoopBackOff)", pods[0].ReadyLabel)
	assert.Equal(t, int32(2), pods[0].Restarts)
	assert.Equal(t, "3d", pods[0].Age)
}
