package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the client IP for rate-limiting keys. X-Forwarded-For is
// consulted first (frontend traffic arrives through the hosting platform's
// proxy), then X-Real-IP, then RemoteAddr.
func FromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
