package models

// UploadResult is the backend answer to a multipart file upload
type UploadResult struct {
	URL  string `json:"url"`
	Size string `json:"size"`
}
