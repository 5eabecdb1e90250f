package ports

import "context"

// Transport performs one HTTP POST of an XML document and returns the raw
// reply bytes. Implementations own timeouts, connection pooling and TLS; the
// gateway client treats any returned error as an opaque transport failure and
// never retries. A non-2xx reply is an error, not a response.
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}
