package dto

// ErrorResponse cuerpo de error HTTP. Message es apto para el cliente; el
// detalle de fallos internos solo se registra en el servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse respuesta mínima para operaciones sin cuerpo (ej. delete).
type SuccessResponse struct {
	Success bool `json:"success"`
}
