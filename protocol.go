package main

import (
	"fmt"
	"strings"
)

// Not map[string][]string, unlike http.Header
type HTTPHeader map[string]string

type Request struct {
	Method  string
	Target  string
	Version string
	Headers HTTPHeader
	Body    []byte
}

// HeaderField is a single response header line.
type HeaderField struct {
	Name  string
	Value string
}

// ResponseHeader keeps fields in insertion order. Unlike the request-side
// map, order matters here: it is the order written to the wire.
type ResponseHeader []HeaderField

// Set replaces an existing field in place, so an overwritten value keeps
// its position on the wire.
func (h *ResponseHeader) Set(name, value string) {
	for i := range *h {
		if strings.EqualFold((*h)[i].Name, name) {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, HeaderField{name, value})
}

func (h ResponseHeader) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

type Response struct {
	Version string
	Status  int
	Phrase  string
	Headers ResponseHeader
	Body    []byte
}

func newResponse(status int, phrase string) *Response {
	return &Response{
		Version: "HTTP/1.1",
		Status:  status,
		Phrase:  phrase,
	}
}

// Responses carry mutable headers, so each caller gets a fresh value.
func ResponseOK() *Response               { return newResponse(200, "OK") }
func ResponseCreated() *Response          { return newResponse(201, "Created") }
func ResponseBadRequest() *Response       { return newResponse(400, "Bad Request") }
func ResponseNotFound() *Response         { return newResponse(404, "Not Found") }
func ResponseMethodNotAllowed() *Response { return newResponse(405, "Method Not Allowed") }

// ProtocolError is a framing fault on the client's side, answerable with
// a 400. Other reader errors are stream faults and close the connection.
type ProtocolError struct {
	msg string
}

func (e *ProtocolError) Error() string {
	return e.msg
}

func protocolErrorf(format string, args ...interface{}) error {
	return &ProtocolError{fmt.Sprintf(format, args...)}
}
