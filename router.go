package main

import "strings"

// HandlerFunc produces a response for a routed request. A non-nil error
// means the connection is dropped without writing anything.
type HandlerFunc func(req *Request, files *FileStore) (*Response, error)

type route struct {
	target  string
	handler HandlerFunc
}

// The tables are static; exact rules are checked before prefix rules and
// the first match wins.
var exactRoutes = []route{
	{"/", rootHandler},
	{"/user-agent", userAgentHandler},
}

var prefixRoutes = []route{
	{"/echo/", echoHandler},
	{"/files/", filesHandler},
}

func RouteRequest(req *Request, files *FileStore) (*Response, error) {
	for _, rt := range exactRoutes {
		if req.Target == rt.target {
			return rt.handler(req, files)
		}
	}
	for _, rt := range prefixRoutes {
		if strings.HasPrefix(req.Target, rt.target) {
			return rt.handler(req, files)
		}
	}
	return notFoundHandler(req, files)
}
