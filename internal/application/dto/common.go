package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Storage     string `json:"storage"`
	Persistence string `json:"persistence"` // "ok" o el último error de guardado
}
