// Package requestid tags every response with an X-Request-Id header.
package requestid

import (
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Header carries the request ID in both directions.
const Header = "X-Request-Id"

// maxInboundLength caps how much of a client-supplied ID is echoed back.
const maxInboundLength = 128

// Generator produces new request IDs.
type Generator func() (string, error)

// Middleware reuses a client-supplied ID or generates a new one.
type Middleware struct {
	generate Generator
}

// New returns a request ID middleware backed by random UUIDv4s.
func New() *Middleware {
	return &Middleware{generate: newV4}
}

// NewWithGenerator returns a request ID middleware with a custom generator.
func NewWithGenerator(gen Generator) *Middleware {
	if gen == nil {
		gen = newV4
	}
	return &Middleware{generate: gen}
}

func newV4() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Middleware returns the middleware function
func (m *Middleware) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		id := rp.Request().Header.Get(Header)
		if id == "" || len(id) > maxInboundLength {
			generated, err := m.generate()
			if err != nil {
				// response goes out untagged
				generated = ""
			}
			id = generated
		}
		if id != "" {
			rp.Writer().Header().Set(Header, id)
		}
		rp.Next()
	}
}
