// Package httpserver builds the http.Server warden listens on.
package httpserver

import (
	"net/http"
	"time"
)

// Every warden request is a small JSON document; the proof middleware caps
// bodies at 1 MiB. The timeouts assume that shape, and MaxHeaderBytes leaves
// room for a bearer token without admitting arbitrarily large headers.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 16 << 10
)

// New builds the server with limits sized for warden's request shapes.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}
}
