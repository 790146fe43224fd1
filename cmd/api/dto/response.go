package dto

// ErrorResponseDTO is the common error envelope.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"not found"`

	// Missing lists every absent/empty required field on validation
	// failures, so a client can fix a whole request in one round trip.
	Missing []string `json:"missing,omitempty"`
}

// MessageResponseDTO is the common success-message envelope.
type MessageResponseDTO struct {
	Message string `json:"message" example:"deleted"`
}

// HealthResponseDTO reports liveness and process uptime.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
	Uptime string `json:"uptime" example:"1h23m45s"`
}

// CopyCountResponseDTO returns the post-increment copy counter.
type CopyCountResponseDTO struct {
	CopyCount int64 `json:"copy_count" example:"42"`
}

// DownloadCountResponseDTO returns the post-increment download counter.
type DownloadCountResponseDTO struct {
	Downloads int64 `json:"downloads" example:"7"`
}
