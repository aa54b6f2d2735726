package dto

// APIResponse is the envelope every /api endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail builds an unsuccessful envelope carrying message.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
