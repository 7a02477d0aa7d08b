package models

// UpstreamResponse is a response captured from an upstream service and relayed verbatim
type UpstreamResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
