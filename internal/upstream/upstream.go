// Package upstream defines the error taxonomy shared by the external
// service adapters (Gemini, Vapi). Transport maps these onto HTTP codes.
package upstream

import "fmt"

// CredentialError means a required API credential was empty at client
// construction time. The client is unusable; nothing was sent.
type CredentialError struct {
	Name string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Name)
}

// StatusError means the upstream returned a non-2xx status. It carries
// the status text verbatim and is never retried.
type StatusError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Service, e.Status)
}

// DecodeError means a 2xx response did not contain the expected JSON
// shape (e.g. no candidate text).
type DecodeError struct {
	Service string
	Msg     string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Service, e.Msg)
}
