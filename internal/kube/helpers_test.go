package kube

import (
	"testing"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"

	"kubeui/internal/cluster"
)

func newTestClients(t *testing.T, objs ...runtime.Object) (*cluster.Clients, *fake.Clientset) {
	t.Helper()
	cs := fake.NewClientset(objs...)
	return cluster.NewManagerForClients(cs).Clients(), cs
}

// listActionNamespaces returns the namespace of every recorded list action.
func listActionNamespaces(cs *fake.Clientset, resource string) []string {
	var out []string
	for _, a := range cs.Actions() {
		if a.GetVerb() == "list" && a.GetResource().Resource == resource {
			out = append(out, a.GetNamespace())
		}
	}
	return out
}
