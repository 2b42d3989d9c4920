package health

// HealthResponse is the static payload of the health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
