package dto

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse describes the running service
type StatusResponse struct {
	Status   string            `json:"status"`
	Database string            `json:"database,omitempty"`
	Routes   map[string]string `json:"routes,omitempty"`
}

// StoragePathResponse reports where the database file lives
type StoragePathResponse struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}
