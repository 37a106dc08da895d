package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Router is a minimal HTTP router with method-aware routing, trailing
// wildcard segments and colored request logging.
type Router struct {
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  []string               // registration order, most specific first
}

func New() *Router {
	return &Router{routes: make(map[string]HandlerFunc)}
}

func (r *Router) GET(path string, h HandlerFunc)  { r.register(http.MethodGet, path, h) }
func (r *Router) POST(path string, h HandlerFunc) { r.register(http.MethodPost, path, h) }

func (r *Router) register(method, path string, h HandlerFunc) {
	r.routes[method+":"+path] = h
	for _, p := range r.paths {
		if p == path {
			return
		}
	}
	r.paths = append(r.paths, path)
}

// ServeHTTP dispatches the request and logs method, path, status and
// duration for every request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h, ok := r.routes[req.Method+":"+req.URL.Path]; ok {
		h(lrw, req)
	} else if h, ok := r.matchWildcard(req.Method, req.URL.Path); ok {
		h(lrw, req)
	} else if r.pathExists(req.URL.Path) {
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// matchWildcard matches registered patterns containing "*" segments
// against the request path, in registration order.
func (r *Router) matchWildcard(method, path string) (HandlerFunc, bool) {
	for _, pattern := range r.paths {
		if !strings.Contains(pattern, "*") {
			continue
		}
		if !matchPattern(path, pattern) {
			continue
		}
		if h, ok := r.routes[method+":"+pattern]; ok {
			return h, true
		}
	}
	return nil, false
}

func (r *Router) pathExists(path string) bool {
	for _, pattern := range r.paths {
		if pattern == path || (strings.Contains(pattern, "*") && matchPattern(path, pattern)) {
			return true
		}
	}
	return false
}

func matchPattern(path, pattern string) bool {
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")

	// A trailing "*" swallows any number of remaining segments.
	if patternSegs[len(patternSegs)-1] == "*" {
		if len(pathSegs) < len(patternSegs) {
			return false
		}
		for i := 0; i < len(patternSegs)-1; i++ {
			if patternSegs[i] != "*" && patternSegs[i] != pathSegs[i] {
				return false
			}
		}
		return true
	}

	if len(pathSegs) != len(patternSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// Start runs the HTTP server on addr.
func (r *Router) Start(addr string) {
	log.Printf("%s🚀 Server listening on %s%s", colorGreen, addr, colorReset)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("%s❌ Server failed: %v%s", colorRed, err, colorReset)
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusColor(code int) string {
	switch {
	case code >= 500:
		return colorRed
	case code >= 400:
		return colorYellow
	default:
		return colorGreen
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorBlue
	case http.MethodPost:
		return colorGreen
	case http.MethodDelete:
		return colorRed
	default:
		return colorYellow
	}
}
