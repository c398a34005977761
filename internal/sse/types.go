package sse

// ConnectedPayload is the first message on every stream
type ConnectedPayload struct {
	ClientID string   `json:"clientId"`
	Filters  []string `json:"filters,omitempty"`
}
