package main

import (
	"bytes"
	"compress/gzip"
	"strconv"
	"strings"
)

// The one scheme we can produce. With several this would need a
// deterministic pick rule.
const supportedEncoding = "gzip"

// acceptsGzip reports whether the client's Accept-Encoding value lists the
// supported scheme. Tokens are comma-separated, trimmed and matched
// case-insensitively.
func acceptsGzip(h HTTPHeader) bool {
	enc, ok := h["accept-encoding"]
	if !ok {
		return false
	}
	for _, tok := range strings.Split(enc, ",") {
		if strings.ToLower(strings.TrimSpace(tok)) == supportedEncoding {
			return true
		}
	}
	return false
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeResponse applies negotiated compression in place. A response
// without a body is never given a Content-Encoding header, and
// Content-Length always reflects the bytes that go on the wire.
func EncodeResponse(res *Response, reqHeaders HTTPHeader) error {
	if len(res.Body) == 0 || !acceptsGzip(reqHeaders) {
		return nil
	}
	compressed, err := gzipCompress(res.Body)
	if err != nil {
		return err
	}
	res.Body = compressed
	res.Headers.Set("Content-Encoding", supportedEncoding)
	res.Headers.Set("Content-Length", strconv.Itoa(len(compressed)))
	return nil
}
