package middleware

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"udyam/pkg/requestcontext"
)

// Device parses the User-Agent header into a short display label
// ("Chrome on Windows 10") carried in the context for request logs. The raw
// header is kept alongside for cases where the parse is too lossy.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithUserAgent(r.Context(), ua)
		ctx = requestcontext.WithDeviceLabel(ctx, ParseUserAgent(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseUserAgent reduces a raw User-Agent string to a stable display label.
func ParseUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown Device"
	}
	ua := useragent.New(raw)
	name, _ := ua.Browser()
	os := ua.OS()
	switch {
	case name != "" && os != "":
		return name + " on " + os
	case name != "":
		return name
	case os != "":
		return os
	default:
		return "Unknown Device"
	}
}
