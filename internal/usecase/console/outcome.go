package console

import (
	"room-booking/internal/domain/form"
	"room-booking/internal/infra/apiclient"
)

// Outcome is what a submitted form shows: field errors, the server's message, or its error text.
type Outcome struct {
	Fields  form.FieldErrors
	Message string
	Error   string
	// ID of the record created by the submission, 0 otherwise.
	ID int64
}

func (o Outcome) OK() bool {
	return !o.Fields.Any() && o.Error == ""
}

func invalid(fe form.FieldErrors) Outcome {
	return Outcome{Fields: fe}
}

func failed(err error) Outcome {
	return Outcome{Error: apiclient.Message(err)}
}
