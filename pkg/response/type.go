package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope used by system routes (health, readiness).
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// TextResp is the normalized success body of the relay endpoint.
type TextResp struct {
	Text string `json:"text"`
}

// ErrorResp is the error body of the relay endpoint.
type ErrorResp struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
