// Package e2e contains Terratest end-to-end tests for the greeter service.
//
// These tests talk to a real listening server over HTTP rather than calling
// handlers directly.
//
// Test Levels:
//   - In-process: start the server on a loopback port and poll it (always run)
//   - Integration: build and run the binary and the container image
//     (requires RUN_INTEGRATION_TESTS=true, a free port 8080 and Docker)
//
// Running Tests:
//
//	go test -v ./internal/e2e/...
//	RUN_INTEGRATION_TESTS=true go test -v -timeout 15m ./internal/e2e/...
//
// Environment Variables:
//   - TEST_IMAGE_REPO, TEST_BUILD_CONTEXT, TEST_DOCKERFILE
//   - TEST_HOST_PORT
//   - TEST_MAX_RETRIES, TEST_RETRY_DELAY
//   - TEST_SKIP_CLEANUP
package e2e
