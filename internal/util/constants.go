package util

const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "requestId"
)
