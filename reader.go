package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Requests with a declared body larger than this are rejected instead of
// parking the worker on an endless read.
const maxBodyBytes = 1 << 20

type baseReader struct {
	r     *bufio.Reader
	errCh chan error
}

func (r *baseReader) ErrorOccurred() <-chan error {
	return r.errCh
}

// similar to readLineSlice() in net/textproto/reader.go
func (r *baseReader) readLine() (string, error) {
	var line []byte
	for {
		l, more, err := r.r.ReadLine()
		if err != nil {
			return "", err
		}
		if line == nil && !more {
			return string(l), nil
		}
		line = append(line, l...)
		if !more {
			break
		}
	}
	return string(line), nil
}

func (r *baseReader) readHeaders() (HTTPHeader, error) {
	headers := make(map[string]string)
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, fmt.Errorf("failed to read headers: %w", err)
		}
		if len(line) == 0 {
			break
		}
		fs := strings.SplitN(line, ":", 2)
		if len(fs) != 2 {
			// Tolerated; routes only depend on well-formed headers.
			continue
		}
		hdr := strings.ToLower(strings.TrimSpace(fs[0]))
		headers[hdr] = strings.TrimSpace(fs[1])
	}
	return headers, nil
}

// RequestReader reads one HTTP/1.1 request, headers and body included.
// The body is framed by Content-Length; without the header it is empty.
type RequestReader struct {
	baseReader
	req   *Request
	reqCh chan *Request
}

func NewRequestReader(r io.Reader) *RequestReader {
	var br *bufio.Reader
	if casted, ok := r.(*bufio.Reader); ok {
		br = casted
	} else {
		br = bufio.NewReader(r)
	}
	rr := &RequestReader{
		baseReader{br, make(chan error, 1)},
		&Request{},
		make(chan *Request, 1),
	}
	return rr
}

func (r *RequestReader) Start() {
	go func() {
		if err := r.readRequestLine(); err != nil {
			r.errCh <- err
			return
		}
		if err := r.readRequestHeaders(); err != nil {
			r.errCh <- err
			return
		}
		if err := r.readRequestBody(); err != nil {
			r.errCh <- err
			return
		}
		r.reqCh <- r.req
	}()
}

func (r *RequestReader) readRequestLine() error {
	rl, err := r.readLine()
	if err != nil {
		// Raw io error, typically EOF on a connection closed early.
		return err
	}
	fields := strings.Split(rl, " ")
	if len(fields) < 3 {
		return protocolErrorf("invalid request line: %q", rl)
	}
	r.req.Method = fields[0]
	r.req.Target = fields[1]
	r.req.Version = fields[2]
	return nil
}

func (r *RequestReader) readRequestHeaders() error {
	headers, err := r.readHeaders()
	if err == nil {
		r.req.Headers = headers
	}
	return err
}

func (r *RequestReader) readRequestBody() error {
	cls, ok := r.req.Headers["content-length"]
	if !ok {
		return nil
	}
	cl, err := strconv.Atoi(cls)
	if err != nil || cl < 0 {
		return protocolErrorf("invalid Content-Length: %q", cls)
	}
	if cl > maxBodyBytes {
		return protocolErrorf("declared body too large: %d", cl)
	}
	if cl == 0 {
		return nil
	}
	body := make([]byte, cl)
	if _, err := io.ReadFull(r.r, body); err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	r.req.Body = body
	return nil
}

func (r *RequestReader) RequestReceived() <-chan *Request {
	return r.reqCh
}
