package main

import (
	"fmt"
	"io"
	"unicode"
)

func capitalizeHeader(h string) string {
	ret := make([]rune, len(h))
	cap := true
	for i, c := range h {
		r := rune(c)
		if cap && unicode.IsLetter(r) {
			ret[i] = unicode.ToUpper(r)
			cap = false
		} else {
			ret[i] = r
		}
		if c == '-' {
			cap = true
		}
	}
	return string(ret)
}

// WriteResponse serializes the status line and headers as text and appends
// the body as opaque bytes. Headers go out in insertion order.
func WriteResponse(w io.Writer, res *Response) error {
	if _, err := fmt.Fprintf(w, "%s %d %s\r\n", res.Version, res.Status, res.Phrase); err != nil {
		return err
	}
	for _, f := range res.Headers {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", capitalizeHeader(f.Name), f.Value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\r\n"); err != nil {
		return err
	}
	if len(res.Body) == 0 {
		return nil
	}
	_, err := w.Write(res.Body)
	return err
}
