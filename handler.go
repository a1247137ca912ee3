package main

import (
	"fmt"
	"strconv"
	"strings"
)

func rootHandler(_ *Request, _ *FileStore) (*Response, error) {
	return ResponseOK(), nil
}

func echoHandler(req *Request, _ *FileStore) (*Response, error) {
	// The suffix is taken literally, no URL decoding.
	msg := strings.TrimPrefix(req.Target, "/echo/")
	res := ResponseOK()
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", strconv.Itoa(len(msg)))
	res.Body = []byte(msg)
	return res, nil
}

func userAgentHandler(req *Request, _ *FileStore) (*Response, error) {
	ua, ok := req.Headers["user-agent"]
	if !ok {
		return ResponseBadRequest(), nil
	}
	res := ResponseOK()
	res.Headers.Set("Content-Type", "text/plain")
	res.Headers.Set("Content-Length", strconv.Itoa(len(ua)))
	res.Body = []byte(ua)
	return res, nil
}

func filesHandler(req *Request, files *FileStore) (*Response, error) {
	name := strings.TrimPrefix(req.Target, "/files/")
	switch req.Method {
	case "GET":
		return fileGet(name, files)
	case "POST":
		return filePost(name, req.Body, files)
	default:
		return ResponseMethodNotAllowed(), nil
	}
}

func fileGet(name string, files *FileStore) (*Response, error) {
	if !files.Exists(name) {
		return ResponseNotFound(), nil
	}
	data, err := files.ReadAll(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}
	res := ResponseOK()
	res.Headers.Set("Content-Type", "application/octet-stream")
	res.Headers.Set("Content-Length", strconv.Itoa(len(data)))
	res.Body = data
	return res, nil
}

func filePost(name string, body []byte, files *FileStore) (*Response, error) {
	if err := files.WriteAll(name, body); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", name, err)
	}
	return ResponseCreated(), nil
}

func notFoundHandler(_ *Request, _ *FileStore) (*Response, error) {
	return ResponseNotFound(), nil
}
