package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string          `json:"status"`
	Code   string          `json:"code,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NewSuccess returns a success envelope wrapping the marshalled payload.
func NewSuccess(data interface{}) Envelope {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = nil
	}
	return Envelope{
		Status: "success",
		Data:   raw,
	}
}

// NewError returns an error envelope.
func NewError(code string, message string) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  message,
	}
}

// IsError reports whether the envelope carries an error payload.
func (e Envelope) IsError() bool {
	return e.Status == "error"
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
