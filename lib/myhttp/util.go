package myhttp

import (
	"fmt"
	"net/http"
	"os"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GuessHostnameWithScheme derives the externally reachable base url when no
// request is at hand, as needed when registering push subscriptions.
func GuessHostnameWithScheme() string {
	if hostname := os.Getenv("PUBLIC_HOSTNAME"); hostname != "" {
		return fmt.Sprintf("https://%s", hostname)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return fmt.Sprintf("http://localhost:%s", port)
}
