package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMailerSendSuccess(t *testing.T) {
	var captured sendEmailRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email-abc"}`))
	}))
	defer server.Close()

	mailer := NewMailer("re_test_key", "Contact Form <noreply@example.com>", "owner@example.com", server.URL)
	receipt, err := mailer.Send(context.Background(), "Alice", "alice@example.com", "Hello <world>\nSecond line")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if receipt.ID != "email-abc" {
		t.Fatalf("unexpected receipt id %q", receipt.ID)
	}

	if authHeader != "Bearer re_test_key" {
		t.Fatalf("unexpected authorization header %q", authHeader)
	}
	if captured.To != "owner@example.com" {
		t.Fatalf("unexpected recipient %q", captured.To)
	}
	if !strings.Contains(captured.Subject, "Alice") {
		t.Fatalf("subject should mention the sender, got %q", captured.Subject)
	}
	if !strings.Contains(captured.HTML, "&lt;world&gt;") {
		t.Fatalf("expected angle brackets to be escaped in body: %s", captured.HTML)
	}
	if !strings.Contains(captured.HTML, "Second line") || !strings.Contains(captured.HTML, "<br/>") {
		t.Fatalf("expected newline converted to <br/>: %s", captured.HTML)
	}
}

func TestMailerSendServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"invalid from address"}}`))
	}))
	defer server.Close()

	mailer := NewMailer("re_test_key", "bad", "owner@example.com", server.URL)
	_, err := mailer.Send(context.Background(), "Alice", "alice@example.com", "Hello")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "invalid from address") {
		t.Fatalf("expected service error message to surface, got %v", err)
	}
}

func TestMailerSendNotConfigured(t *testing.T) {
	mailer := NewMailer("", "from@example.com", "", "")
	_, err := mailer.Send(context.Background(), "Alice", "alice@example.com", "Hello")
	if !errors.Is(err, ErrMailerNotConfigured) {
		t.Fatalf("expected ErrMailerNotConfigured, got %v", err)
	}
}
