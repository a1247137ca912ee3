package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"
)

// Worker handles one connection: one request, one response, close.
type Worker struct {
	conn   net.Conn
	reader *bufio.Reader
	files  *FileStore
	req    *Request
	res    *Response
	done   chan struct{}
}

type stateFunc func(*Worker) stateFunc

func NewWorker(files *FileStore) *Worker {
	return &Worker{
		conn:   nil,
		reader: nil,
		files:  files,
		req:    nil,
		res:    nil,
		done:   make(chan struct{}),
	}
}

func (w *Worker) Start(conn net.Conn) {
	w.conn = conn
	w.reader = bufio.NewReader(conn)

	for state := waitForRequest; state != nil; {
		state = state(w)
	}
}

func (w *Worker) Cancel() {
	w.done <- struct{}{}
}

func (w *Worker) requestReceived(req *Request) stateFunc {
	w.req = req
	log.Printf("I %s %s %s", w.conn.RemoteAddr(), req.Method, req.Target)

	res, err := RouteRequest(req, w.files)
	if err != nil {
		// File I/O fault. Nothing was written yet, so drop the
		// connection rather than risk a corrupt partial response.
		log.Printf("E handler failed: %v", err)
		return finishWorker
	}
	w.res = res
	return sendResponse
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	r := NewRequestReader(w.reader)
	r.Start()
	for {
		select {
		case req := <-r.RequestReceived():
			return w.requestReceived(req)
		case err := <-r.ErrorOccurred():
			var pe *ProtocolError
			if errors.As(err, &pe) {
				log.Printf("W bad request: %v", err)
				w.res = ResponseBadRequest()
				return sendErrorResponse
			}
			if !errors.Is(err, io.EOF) {
				log.Printf("W read failed: %v", err)
			}
			return finishWorker
		case <-w.done:
			log.Println("W waitForRequest done")
			return finishWorker
		}
	}
}

func sendResponse(w *Worker) stateFunc {
	if err := EncodeResponse(w.res, w.req.Headers); err != nil {
		log.Printf("E compress failed: %v", err)
		return finishWorker
	}
	if err := WriteResponse(w.conn, w.res); err != nil {
		log.Printf("W write failed: %v", err)
	}
	return finishWorker
}

func sendErrorResponse(w *Worker) stateFunc {
	log.Printf("E sending error response: %d %s", w.res.Status, w.res.Phrase)
	WriteResponse(w.conn, w.res)
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	if w.conn != nil {
		w.conn.Close()
	}
	close(w.done)
	log.Printf("I worker finished")
	return nil
}
