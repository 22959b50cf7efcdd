package httpclient

import "net/http"

// HTTPClient abstracts *http.Client so transports can be swapped in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
