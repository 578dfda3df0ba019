package middleware

import (
	"net/http"
	"net/netip"
)

type Middleware func(http.Handler) http.HandlerFunc

// MiddlewareChain wraps h so that m[0] runs first and h runs last.
//
//	middleware.MiddlewareChain(
//		s.contactHandler,
//		middleware.RateLimiter(middleware.ForwardedForKey, s.contactLimiter), // first
//		middleware.ACT_app_json,
//		middleware.RequestSize(maxJsonBodyBytes), // last
//	)
func MiddlewareChain(h http.HandlerFunc, m ...Middleware) http.HandlerFunc {
	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}
	return wrapped
}

// canonicalizeIP returns ip in a form suitable as a rate limit key.
// IPv4 (and IPv4-mapped IPv6) addresses are returned as dotted quads, IPv6
// addresses are reduced to their /64 prefix so one host cannot rotate through
// its own subnet. Anything that does not parse is returned unchanged.
func canonicalizeIP(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return ip
	}
	addr = addr.Unmap()
	if addr.Is4() {
		return addr.String()
	}
	prefix, err := addr.WithZone("").Prefix(64)
	if err != nil {
		return ip
	}
	return prefix.Addr().String()
}
