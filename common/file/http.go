package file

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var (
	httpMu     sync.RWMutex
	httpClient = &http.Client{}
	httpAgent  = "xliff-dumper"
)

// SetUserAgent sets the User-Agent sent with every request.
func SetUserAgent(ua string) {
	httpMu.Lock()
	defer httpMu.Unlock()
	httpAgent = ua
}

// SetHTTPClientTimeout sets the whole-request timeout; 0 disables it.
func SetHTTPClientTimeout(d time.Duration) {
	httpMu.Lock()
	defer httpMu.Unlock()
	httpClient = &http.Client{Timeout: d}
}

func client() *http.Client {
	httpMu.RLock()
	defer httpMu.RUnlock()
	return httpClient
}

func userAgent() string {
	httpMu.RLock()
	defer httpMu.RUnlock()
	return httpAgent
}

func newRequest(method, url string) (*http.Request, error) {
	return newRequestContext(context.Background(), method, url)
}

func newRequestContext(ctx context.Context, method, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("User-Agent", userAgent())
	return req, nil
}

// StatusError is returned when the remote answers with a non-success status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

func checkStatus(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return errors.WithStack(&StatusError{URL: url, StatusCode: resp.StatusCode, Status: status})
}
