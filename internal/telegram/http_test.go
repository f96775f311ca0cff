package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeBotAPI mimics the sendMessage endpoint and records every request.
type fakeBotAPI struct {
	mu       sync.Mutex
	paths    []string
	payloads []map[string]interface{}
	status   int
	response string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var payload map[string]interface{}
	_ = json.Unmarshal(body, &payload)

	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.payloads = append(f.payloads, payload)
	f.mu.Unlock()

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	response := f.response
	if response == "" {
		response = `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":12345,"type":"private"},"text":"ok"}}`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, response)
}

func newFakeBotAPI(t *testing.T, fake *fakeBotAPI) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return server
}

// TestSendMessage_Success tests successful message sending
func TestSendMessage_Success(t *testing.T) {
	tests := []struct {
		name          string
		chatID        string
		mode          ParseMode
		wantParseMode string
	}{
		{name: "Numeric chat HTML", chatID: "12345", mode: ModeHTML, wantParseMode: "HTML"},
		{name: "Channel username Markdown", chatID: "@dhakadaily", mode: ModeMarkdown, wantParseMode: "Markdown"},
		{name: "Negative group id", chatID: "-1001234567890", mode: ModeHTML, wantParseMode: "HTML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBotAPI{}
			server := newFakeBotAPI(t, fake)

			client, err := NewClient("123:test-token", tt.chatID, WithAPIURL(server.URL))
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}

			if err := client.SendMessage(context.Background(), "আজ রবিবার", tt.mode); err != nil {
				t.Fatalf("SendMessage() unexpected error: %v", err)
			}

			if len(fake.paths) != 1 {
				t.Fatalf("got %d requests, want exactly 1", len(fake.paths))
			}
			if want := "/bot123:test-token/sendMessage"; fake.paths[0] != want {
				t.Errorf("path = %q, want %q", fake.paths[0], want)
			}

			payload := fake.payloads[0]
			if payload["chat_id"] != tt.chatID {
				t.Errorf("chat_id = %v, want %q", payload["chat_id"], tt.chatID)
			}
			if payload["text"] != "আজ রবিবার" {
				t.Errorf("text = %v, want the message", payload["text"])
			}
			if payload["parse_mode"] != tt.wantParseMode {
				t.Errorf("parse_mode = %v, want %q", payload["parse_mode"], tt.wantParseMode)
			}
		})
	}
}

// TestSendMessage_APIError tests API error handling
func TestSendMessage_APIError(t *testing.T) {
	fake := &fakeBotAPI{
		status:   http.StatusBadRequest,
		response: `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
	}
	server := newFakeBotAPI(t, fake)

	client, err := NewClient("123:test-token", "12345", WithAPIURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	err = client.SendMessage(context.Background(), "Test message", ModeHTML)
	if err == nil {
		t.Fatal("SendMessage() expected error for API failure, got nil")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("SendMessage() error = %v, want error containing 'chat not found'", err)
	}
	if len(fake.paths) != 1 {
		t.Errorf("got %d requests, want exactly 1 (no retry)", len(fake.paths))
	}
}

// TestSendMessage_HTTPError tests a non-JSON server failure
func TestSendMessage_HTTPError(t *testing.T) {
	fake := &fakeBotAPI{status: http.StatusInternalServerError, response: "Internal Server Error"}
	server := newFakeBotAPI(t, fake)

	client, err := NewClient("123:test-token", "12345", WithAPIURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := client.SendMessage(context.Background(), "Test message", ModeHTML); err == nil {
		t.Error("SendMessage() expected error for HTTP error, got nil")
	}
}

func TestSendMessage_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient("123:test-token", "12345", WithAPIURL(url))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if err := client.SendMessage(context.Background(), "Test message", ModeHTML); err == nil {
		t.Error("SendMessage() expected error for closed server, got nil")
	}
}

func TestSendMessage_Validation(t *testing.T) {
	fake := &fakeBotAPI{}
	server := newFakeBotAPI(t, fake)

	client, err := NewClient("123:test-token", "12345", WithAPIURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := client.SendMessage(context.Background(), "  ", ModeHTML); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("SendMessage(empty) error = %v, want ErrEmptyMessage", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.SendMessage(ctx, "hello", ModeHTML); !errors.Is(err, context.Canceled) {
		t.Errorf("SendMessage(cancelled) error = %v, want context.Canceled", err)
	}

	if len(fake.paths) != 0 {
		t.Errorf("got %d requests, want none", len(fake.paths))
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		chatID  string
		wantErr error
	}{
		{name: "Valid", token: "123:abc", chatID: "12345"},
		{name: "Missing token", token: "", chatID: "12345", wantErr: ErrMissingToken},
		{name: "Blank token", token: "   ", chatID: "12345", wantErr: ErrMissingToken},
		{name: "Missing chat", token: "123:abc", chatID: "", wantErr: ErrMissingChatID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.token, tt.chatID, WithHTTPClient(http.DefaultClient))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewClient() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && client.ChatID() != tt.chatID {
				t.Errorf("ChatID() = %q, want %q", client.ChatID(), tt.chatID)
			}
		})
	}
}

func TestParseParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ParseMode
		wantErr bool
	}{
		{"", ModeHTML, false},
		{"html", ModeHTML, false},
		{"HTML", ModeHTML, false},
		{"Markdown", ModeMarkdown, false},
		{"markdownv2", "", true},
	}

	for _, tt := range tests {
		got, err := ParseParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
