package models

type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// IndexResponse is the GET / body listing the available endpoints.
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}
