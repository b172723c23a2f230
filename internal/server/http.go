package server

import (
	"net/http"
)

// NewHTTPMux serves the keep-alive surface hosting platforms probe.
func NewHTTPMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Bot is running"))
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })
	return mux
}

func ListenAndServe(addr string, mux *http.ServeMux) error {
	return http.ListenAndServe(addr, mux)
}
