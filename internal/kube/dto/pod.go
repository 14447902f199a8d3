package dto

// PodSummaryDTO reflects only the first container status of a pod.
// Multi-container pods are not aggregated.
type PodSummaryDTO struct {
	Name       string `json:"name,omitempty"`
	Namespace  string `json:"namespace,omitempty"`
	Phase      string `json:"phase,omitempty"`
	NodeName   string `json:"nodeName,omitempty"`
	Restarts   int32  `json:"restarts"`
	ReadyLabel string `json:"readyLabel"`
	Age        string `json:"age"`
}
