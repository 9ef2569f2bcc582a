package core

import "fmt"

type CommandError struct {
	Payload    interface{}
	StatusCode int
	Reason     string
}

func NewCommandError(statusCode int, payload interface{}, reason ...string) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	if len(reason) > 0 {
		e.Reason = reason[0]
	}

	return e
}

func (r CommandError) Error() string {
	var values struct {
		Payload    interface{}
		StatusCode int
		Reason     string
	}

	values.Payload = r.Payload
	values.StatusCode = r.StatusCode
	values.Reason = r.Reason

	return fmt.Sprintf("%+v", values)
}
