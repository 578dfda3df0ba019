package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/l10n"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/middleware/ratelimiter/mem_ratelimiter"
	"github.com/sahilKumar1122/portfolio-api/internal/tracker"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func TestMiddlewareChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			}
		}
	}

	h := MiddlewareChain(okHandler, mark("first"), mark("second"), mark("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestForwardedForKey(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", "unknown"},
		{"   ", "unknown"},
		{"203.0.113.9", "203.0.113.9"},
		{" 203.0.113.9 , 10.0.0.1, 10.0.0.2", "203.0.113.9"},
		{",10.0.0.1", "unknown"},
	}

	for _, c := range cases {
		r := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		if c.header != "" {
			r.Header.Set("X-Forwarded-For", c.header)
		}
		require.Equal(t, c.want, ForwardedForKey(r), "header %q", c.header)
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	l10n.InitL10n([]string{"en", "ar"}, zerolog.Nop())

	now := time.UnixMilli(0)
	limiter := mem_ratelimiter.NewSlidingWindow(ratelimiter.Config{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, mem_ratelimiter.WithClock(func() time.Time { return now }))

	h := MiddlewareChain(okHandler, LocalizerInjector, RateLimiter(ForwardedForKey, limiter))

	send := func(ip string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		r.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	for range 3 {
		require.Equal(t, http.StatusOK, send("203.0.113.9").Code)
		now = now.Add(10 * time.Second)
	}

	w := send("203.0.113.9")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "30", w.Header().Get("Retry-After"))
	require.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Too many requests. Please try again later.", body["error"])
	require.Equal(t, "res_3", body["code"])

	require.Equal(t, http.StatusOK, send("198.51.100.1").Code)
}

func TestRetryAfterSeconds(t *testing.T) {
	require.Equal(t, 1, retryAfterSeconds(0))
	require.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	require.Equal(t, 2, retryAfterSeconds(1001*time.Millisecond))
	require.Equal(t, 60, retryAfterSeconds(time.Minute))
}

func TestLocalizerInjectorDefaultsToFirstLang(t *testing.T) {
	l10n.InitL10n([]string{"en", "ar"}, zerolog.Nop())

	var got string
	h := LocalizerInjector(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = l10n.MustLocalizerFromContext(r.Context()).Lang()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "en", got)

	r := httptest.NewRequest(http.MethodGet, "/?lang=ar", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "ar", got)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "ar-SA,ar;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "ar", got)
}

func TestRealIp(t *testing.T) {
	var ip string
	h := RealIp("X-Real-IP")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, ok := tracker.ReqIPFromContext(r.Context())
		require.True(t, ok)
		ip = addr.String()
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "192.0.2.10", ip)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	r.Header.Set("X-Real-IP", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "203.0.113.7", ip)

	// not an ip, ignored
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	r.Header.Set("X-Real-IP", "not-an-ip")
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "192.0.2.10", ip)
}

func TestCanonicalizeIP(t *testing.T) {
	require.Equal(t, "203.0.113.7", canonicalizeIP("203.0.113.7"))
	require.Equal(t, "2001:db8:1:2::", canonicalizeIP("2001:db8:1:2:3:4:5:6"))
	require.Equal(t, "garbage", canonicalizeIP("garbage"))
}

func TestAllowContentType(t *testing.T) {
	h := MiddlewareChain(okHandler, ACT_app_json)

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=x`))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestHeartbeat(t *testing.T) {
	h := MiddlewareChain(okHandler, Heartbeat)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/other", nil))
	require.Equal(t, "ok", w.Body.String())
}

func TestRecovererWrites500(t *testing.T) {
	l10n.InitL10n([]string{"en"}, zerolog.Nop())

	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) { panic("boom") }, Recoverer)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(zerolog.Nop().WithContext(context.Background()))

	require.NotPanics(t, func() { h.ServeHTTP(w, r) })
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "res_2")
}

func TestThrottleCapacityExceeded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
	}, Throttle(1))

	go h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	<-started

	// no backlog, the second request is rejected at once
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	close(release)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNoCache(t *testing.T) {
	h := MiddlewareChain(okHandler, NoCache)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("If-None-Match", `"abc"`)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, "no-cache", w.Header().Get("Pragma"))
	require.Empty(t, r.Header.Get("If-None-Match"))
}

func TestTimeoutWritesGatewayTimeout(t *testing.T) {
	l10n.InitL10n([]string{"en"}, zerolog.Nop())

	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, Timeout(10*time.Millisecond))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))

	require.Equal(t, http.StatusGatewayTimeout, w.Code)
	require.Contains(t, w.Body.String(), "res_4")
}

func TestTimeoutKeepsHandlerResponse(t *testing.T) {
	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		<-r.Context().Done()
	}, Timeout(10*time.Millisecond))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Empty(t, w.Body.String())
}

func TestRequestSizeRejectsLargeBody(t *testing.T) {
	h := MiddlewareChain(okHandler, RequestSize(8))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"far too long"}`)))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestUUIDEchoesValidHeader(t *testing.T) {
	var seen string
	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		id, ok := tracker.ReqUUIDFromContext(r.Context())
		require.True(t, ok)
		seen = id.String()
	}, RequestUUIDMiddleware)

	const id = "0b6f1b8e-8c1d-4f4e-9c39-1f3f2d7f2a11"
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestUUIDHeader, id)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, id, seen)
	require.Equal(t, id, w.Header().Get(RequestUUIDHeader))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestUUIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.NotEqual(t, "not-a-uuid", seen)
	require.Equal(t, seen, w.Header().Get(RequestUUIDHeader))
}

func TestCSRFProtectionRejectsForeignOrigin(t *testing.T) {
	l10n.InitL10n([]string{"en"}, zerolog.Nop())
	h := MiddlewareChain(okHandler, CSRFProtection("http://localhost:3000"))

	r := httptest.NewRequest(http.MethodPost, "http://api.example.com/api/contact", nil)
	r.Header.Set("Sec-Fetch-Site", "cross-site")
	r.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "res_5")

	r = httptest.NewRequest(http.MethodPost, "http://api.example.com/api/contact", nil)
	r.Header.Set("Sec-Fetch-Site", "cross-site")
	r.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestThrottleBacklogWaitsForSlot(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}, ThrottleBacklog(1, 1, time.Second))

	go h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	<-started

	done := make(chan int)
	go func() {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		done <- w.Code
	}()

	close(release)
	<-started
	require.Equal(t, http.StatusOK, <-done)
}

func TestRemoteAddrKeyPrefersParsedIP(t *testing.T) {
	var key string
	h := MiddlewareChain(func(w http.ResponseWriter, r *http.Request) {
		key = RemoteAddrKey(r)
	}, RealIp("X-Real-IP"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "[2001:db8:1:2:3:4:5:6]:443"
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "2001:db8:1:2::", key)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	r.Header.Set("X-Real-IP", "::ffff:203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "203.0.113.7", key)

	// without RealIp the raw address is used
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "@unix"
	require.Equal(t, "@unix", RemoteAddrKey(r))
}
