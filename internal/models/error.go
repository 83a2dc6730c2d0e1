package models

import "fmt"

// APIErrorPayload is the error object YouTube embeds in response bodies,
// both on non-2xx statuses and inside otherwise successful responses.
type APIErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

func (e APIErrorPayload) String() string {
	if e.Code != 0 {
		return fmt.Sprintf("%d %s", e.Code, e.Message)
	}
	return e.Message
}
