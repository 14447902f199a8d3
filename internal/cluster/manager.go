package cluster

import (
	"errors"
	"fmt"
	"os"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

var ErrKubernetes = errors.New("kubernetes client error")

const (
	SourceInCluster  = "in-cluster"
	SourceKubeconfig = "kubeconfig"
	SourceStatic     = "static"
)

type Options struct {
	// Kubeconfig is an explicit kubeconfig path. Empty uses the clientcmd
	// default loading rules (KUBECONFIG, then ~/.kube/config).
	Kubeconfig string
	// InCluster is "auto", "true" or "false".
	InCluster string
}

// Clients is the upstream connection shared by every request. It is built
// once and only read afterwards.
type Clients struct {
	RestConfig *rest.Config
	Clientset  kubernetes.Interface
	Discovery  discovery.ServerVersionInterface
}

type Manager struct {
	clients *Clients
	source  string
	host    string
}

// NewManager resolves credentials (in-cluster first unless disabled, then
// kubeconfig) and builds the clientset.
func NewManager(opts Options) (*Manager, error) {
	restCfg, source, err := restConfig(opts)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: new clientset: %w", ErrKubernetes, err)
	}

	return &Manager{
		clients: &Clients{
			RestConfig: restCfg,
			Clientset:  clientset,
			Discovery:  clientset.Discovery(),
		},
		source: source,
		host:   restCfg.Host,
	}, nil
}

// NewManagerForClients wraps an already built clientset, e.g. a fake one.
func NewManagerForClients(cs kubernetes.Interface) *Manager {
	return &Manager{
		clients: &Clients{
			Clientset: cs,
			Discovery: cs.Discovery(),
		},
		source: SourceStatic,
	}
}

func (m *Manager) Clients() *Clients { return m.clients }

func (m *Manager) Source() string { return m.source }

func (m *Manager) Host() string { return m.host }

func restConfig(opts Options) (*rest.Config, string, error) {
	mode := opts.InCluster
	if mode == "" {
		mode = "auto"
	}

	if mode != "false" {
		cfg, err := rest.InClusterConfig()
		if err == nil {
			return cfg, SourceInCluster, nil
		}
		if mode == "true" {
			return nil, "", fmt.Errorf("%w: in-cluster config: %w", ErrKubernetes, err)
		}
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if opts.Kubeconfig != "" {
		if _, err := os.Stat(opts.Kubeconfig); err != nil {
			return nil, "", fmt.Errorf("%w: kubeconfig %s: %w", ErrKubernetes, opts.Kubeconfig, err)
		}
		loadingRules.ExplicitPath = opts.Kubeconfig
	}

	cc := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})
	cfg, err := cc.ClientConfig()
	if err != nil {
		return nil, "", fmt.Errorf("%w: build rest config: %w", ErrKubernetes, err)
	}
	return cfg, SourceKubeconfig, nil
}
