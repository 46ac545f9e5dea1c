package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookNotifier posts workflow events to the notification gateway.
// Errors are logged and dropped; the gateway owns retries and fan-out.
type WebhookNotifier struct {
	URL    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (w *WebhookNotifier) Notify(n Notification) {
	body, _ := json.Marshal(n)

	req, err := http.NewRequest("POST", w.URL, bytes.NewBuffer(body))
	if err != nil {
		fmt.Printf("[WebhookNotifier] Failed to build request: %v\n", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		fmt.Printf("[WebhookNotifier] Dispatch failed for %s: %v\n", n.Event, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		fmt.Printf("[WebhookNotifier] Gateway returned status %d for %s\n", resp.StatusCode, n.Event)
	}
}

// LogNotifier is the fallback when no webhook is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	fmt.Printf("[Notify] %s application=%s posting=%s\n", n.Event, n.ApplicationID, n.JobPostingID)
}
