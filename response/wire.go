package response

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"

	blogschema "github.com/reoring/blogschema"
)

// ResponseError is one element of a failure body.
type ResponseError struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Data    any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// Body is the envelope body. Success bodies never carry errors and failure
// bodies always carry an errors array, possibly empty.
type Body struct {
	Status string          `json:"status" yaml:"status"`
	Data   any             `json:"data,omitempty" yaml:"data,omitempty"`
	Errors []ResponseError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type failureBody struct {
	Status string          `json:"status"`
	Errors []ResponseError `json:"errors"`
}

func (b Body) MarshalJSON() ([]byte, error) {
	if b.Status == StatusFailure {
		errs := b.Errors
		if errs == nil {
			errs = []ResponseError{}
		}
		return json.Marshal(failureBody{Status: b.Status, Errors: errs})
	}
	return json.Marshal(successBody{Status: b.Status, Data: b.Data})
}

// Envelope is a response as it travels over the wire.
type Envelope struct {
	Status int  `json:"status" yaml:"status"`
	Body   Body `json:"body" yaml:"body"`
}

// OK returns a success envelope. A nil data leaves data out.
func OK(status int, data any) Envelope {
	return Envelope{Status: status, Body: Body{Status: StatusSuccess, Data: data}}
}

// Fail returns a failure envelope with errs.
func Fail(status int, errs ...ResponseError) Envelope {
	if errs == nil {
		errs = []ResponseError{}
	}
	return Envelope{Status: status, Body: Body{Status: StatusFailure, Errors: errs}}
}

// Marshal encodes v with go-json.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes an envelope.
func Unmarshal(data []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// ToValue converts e into the generic JSON value rules validate.
func (e Envelope) ToValue() (any, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return blogschema.DecodeJSON(bytes.NewReader(data))
}

// Check validates e against r.
func (e Envelope) Check(ctx context.Context, r blogschema.Rule) error {
	v, err := e.ToValue()
	if err != nil {
		return err
	}
	return blogschema.Validate(ctx, r, v)
}
