package models

// FileRequest points at a hosted document to classify.
type FileRequest struct {
	FileURL string `json:"file_url"`
}

// DomainDetection is the classification result for an uploaded document.
type DomainDetection struct {
	Filename    string `json:"filename"`
	Domain      string `json:"domain"`
	Subdomain   string `json:"subdomain"`
	Explanation string `json:"explanation"`
}
