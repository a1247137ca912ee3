package main

import (
	"errors"
	"flag"
	"log"
	"net"
	"os"
)

var (
	port      = flag.String("port", "4221", "port number")
	directory = flag.String("directory", os.TempDir(), "file root served under /files/")
)

func handle(conn net.Conn, files *FileStore) {
	worker := NewWorker(files)
	worker.Start(conn) // worker takes the ownership of |conn|
}

func serve(ln net.Listener, files *FileStore) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("accept error: %v", err)
			continue
		}
		go handle(conn, files)
	}
}

func main() {
	flag.Parse()

	ln, err := net.Listen("tcp", ":"+*port)
	if err != nil {
		panic(err)
	}
	defer ln.Close()

	serve(ln, NewFileStore(*directory))
}
