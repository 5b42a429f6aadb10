package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body:
// {status, success, message, paginate?, data?, errors?, metaData?}.
type Envelope struct {
	Status   int                    `json:"status"`
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Paginate *Paginate              `json:"paginate,omitempty"`
	Data     interface{}            `json:"data,omitempty"`
	Errors   map[string]interface{} `json:"errors,omitempty"`
	MetaData map[string]interface{} `json:"metaData,omitempty"`
}

// Respond writes the envelope with the given status. Success is derived
// from the status code.
func Respond(c *gin.Context, status int, message string, opts ...func(*Envelope)) {
	env := Envelope{
		Status:  status,
		Success: status < 300,
		Message: message,
	}
	for _, opt := range opts {
		opt(&env)
	}
	c.JSON(status, env)
}

// WithData attaches the data payload
func WithData(data interface{}) func(*Envelope) {
	return func(e *Envelope) { e.Data = data }
}

// WithPaginate attaches pagination metadata
func WithPaginate(p Paginate) func(*Envelope) {
	return func(e *Envelope) { e.Paginate = &p }
}

// WithErrors attaches a field→message error map
func WithErrors(errs map[string]interface{}) func(*Envelope) {
	return func(e *Envelope) { e.Errors = errs }
}

// WithMetaData attaches out-of-band values such as issued tokens
func WithMetaData(meta map[string]interface{}) func(*Envelope) {
	return func(e *Envelope) { e.MetaData = meta }
}
