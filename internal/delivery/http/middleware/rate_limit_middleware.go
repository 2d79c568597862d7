package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"bookingcare-service/pkg/response"

	"golang.org/x/time/rate"
)

const (
	clientTTL       = 3 * time.Minute
	cleanupInterval = time.Minute
)

type rateClient struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimitMiddleware applies a token bucket per client IP
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*rateClient
	limit   rate.Limit
	burst   int
	stop    chan struct{}
	once    sync.Once
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*rateClient),
		limit:   rate.Limit(rps),
		burst:   burst,
		stop:    make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !m.limiter(clientIP(req)).Allow() {
			response.TooManyRequests(w)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// Stop ends the stale client cleanup loop
func (m *RateLimitMiddleware) Stop() {
	m.once.Do(func() { close(m.stop) })
}

func (m *RateLimitMiddleware) limiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.clients[ip]; ok {
		c.seen = time.Now()
		return c.limiter
	}
	l := rate.NewLimiter(m.limit, m.burst)
	m.clients[ip] = &rateClient{limiter: l, seen: time.Now()}
	return l
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.removeStale(time.Now())
		}
	}
}

func (m *RateLimitMiddleware) removeStale(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ip, c := range m.clients {
		if now.Sub(c.seen) > clientTTL {
			delete(m.clients, ip)
		}
	}
}

func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
