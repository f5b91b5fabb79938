// Command healthcheck probes the greeter from inside its own container.
// Hardened base images ship no shell or curl, so the image's HEALTHCHECK
// runs this binary instead.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	targetURL = "http://127.0.0.1:8080/"
	timeout   = 2 * time.Second
)

func main() {
	log.SetPrefix("healthcheck: ")
	log.SetFlags(0)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := probe(ctx, http.DefaultClient, targetURL); err != nil {
		log.Print(err)
		cancel()
		os.Exit(1)
	}
}

// probe succeeds only if url answers GET with 200.
func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}
