package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Content-Type"}
	corsMaxAge         = 10 * time.Minute
)

// CORSMiddleware lets the browser front-end call the API from any origin
type CORSMiddleware struct {
	methods string
	headers string
	maxAge  string
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{
		methods: strings.Join(corsAllowedMethods, ", "),
		headers: strings.Join(corsAllowedHeaders, ", "),
		maxAge:  strconv.Itoa(int(corsMaxAge.Seconds())),
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", m.methods)
		h.Set("Access-Control-Allow-Headers", m.headers)

		// preflight ends here
		if req.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", m.maxAge)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
