package main

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
)

func startTestServer(t *testing.T, files *FileStore) net.Addr {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })
	go serve(ln, files)
	return ln.Addr()
}

// One request per connection; the server closes after responding, so
// reading to EOF yields the whole response.
func roundTrip(t *testing.T, addr net.Addr, request string) string {
	conn, err := net.Dial("tcp", addr.String())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if _, err := fmt.Fprint(conn, request); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(conn)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestServeEcho(t *testing.T) {
	addr := startTestServer(t, NewFileStore(t.TempDir()))

	actual := roundTrip(t, addr, "GET /echo/ping HTTP/1.1\r\nHost: localhost\r\n\r\n")
	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Type: text/plain\r\n",
		"Content-Length: 4\r\n",
		"\r\n",
		"ping",
	}
	ExpectEqual(t, strings.Join(ss, ""), actual)
}

func TestServePostThenGet(t *testing.T) {
	addr := startTestServer(t, NewFileStore(t.TempDir()))

	body := "posted bytes"
	post := strings.Join([]string{
		"POST /files/roundtrip.bin HTTP/1.1\r\n",
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n",
		"\r\n",
		body,
	}, "")
	ExpectEqual(t, "HTTP/1.1 201 Created\r\n\r\n", roundTrip(t, addr, post))

	actual := roundTrip(t, addr, "GET /files/roundtrip.bin HTTP/1.1\r\nHost: localhost\r\n\r\n")
	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Type: application/octet-stream\r\n",
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n",
		"\r\n",
		body,
	}
	ExpectEqual(t, strings.Join(ss, ""), actual)
}

func TestServeNotFound(t *testing.T) {
	addr := startTestServer(t, NewFileStore(t.TempDir()))
	actual := roundTrip(t, addr, "GET /nonexistent-route HTTP/1.1\r\nHost: localhost\r\n\r\n")
	ExpectEqual(t, "HTTP/1.1 404 Not Found\r\n\r\n", actual)
}
