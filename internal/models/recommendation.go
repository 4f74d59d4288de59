package models

// ErrorResponse is the JSON body written when a request fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConnectionStatus is the body of /test-connection.
type ConnectionStatus struct {
	Status  string          `json:"status"`
	Sample  []DisplayRecord `json:"sample,omitempty"`
	Message string          `json:"message,omitempty"`
}
