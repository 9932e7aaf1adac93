package dto

// DateLayout formato de fecha en requests y respuestas (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// MessageResponse cuerpo genérico de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
