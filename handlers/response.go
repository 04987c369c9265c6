package handlers

// Envelope is the uniform response wrapper returned by every endpoint.
// Error carries internal diagnostic detail on unexpected failures; it is for
// logs and debugging, not end-user display.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
