package bridge

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/viant/afs/url"
	"golang.org/x/oauth2"
)

// newHTTPClient builds the client used for remote calls, picking the transport by endpoint scheme.
func newHTTPClient(endpoint string, token string, timeout time.Duration) (*http.Client, error) {
	scheme := strings.ToLower(url.Scheme(endpoint, ""))
	base := http.DefaultTransport.(*http.Transport).Clone()
	switch scheme {
	case "http":
	case "https":
		base.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme %q in %v", scheme, endpoint)
	}
	var roundTripper http.RoundTripper = base
	if token != "" {
		roundTripper = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		}
	}
	return &http.Client{Transport: roundTripper, Timeout: timeout}, nil
}
