package dto

type ErrorDTO struct {
	Error string `json:"error"`
}

type HealthDTO struct {
	Healthy bool   `json:"healthy"`
	Version string `json:"version"`
}
