package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/tracker"
)

// RealIp rewrites r.RemoteAddr to the client address so everything after it
// (the global limiter, the access log) sees the visitor and not the proxy.
// trustedIpHeaders are consulted in order and must only name headers the
// reverse proxy in front of the api overwrites.
func RealIp(trustedIpHeaders ...string) func(next http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			r.RemoteAddr = RealIpFromRequest(r, trustedIpHeaders...)

			zlog := zerolog.Ctx(ctx).With().Str("client_ip", r.RemoteAddr).Logger()
			ctx = zlog.WithContext(ctx)

			if addr, err := netip.ParseAddr(r.RemoteAddr); err == nil {
				ctx = tracker.ContextWithReqIP(ctx, addr)
			} else {
				// unix sockets and test transports; the raw value still works as a key
				zlog.Debug().Err(err).Msg("remote address is not an ip")
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

func RealIpFromRequest(r *http.Request, trustedIpHeaders ...string) string {
	for _, header := range trustedIpHeaders {
		// X-Forwarded-For style lists carry the client first
		first, _, _ := strings.Cut(r.Header.Get(header), ",")
		if addr, err := netip.ParseAddr(strings.TrimSpace(first)); err == nil {
			return canonicalizeIP(addr.String())
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return canonicalizeIP(host)
	}

	return r.RemoteAddr
}
