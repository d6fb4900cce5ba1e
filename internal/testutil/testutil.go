// Package testutil holds request and response helpers shared by HTTP tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// NewRequest builds a request to url. A non-nil body is sent as JSON;
// a string body is sent verbatim.
func NewRequest(t testing.TB, method, url string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	r, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse is a fully read HTTP response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   []byte
}

// Do sends r with client and reads the whole response.
func Do(t testing.TB, client *http.Client, r *http.Request) RecordResponse {
	t.Helper()
	resp, err := client.Do(r)
	if err != nil {
		t.Fatalf("%s %s: %v", r.Method, r.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return RecordResponse{Code: resp.StatusCode, Header: resp.Header, Body: body}
}

// Decode unmarshals the recorded body into a T.
func Decode[T any](t testing.TB, rec RecordResponse) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body, &v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body, err)
	}
	return v
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t testing.TB, rec RecordResponse, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("got status code %d, want %d (body %s)", rec.Code, want, rec.Body)
	}
}
