package dto

type NamespaceSummaryDTO struct {
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}
