package services

import (
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// IPLookup resolves the submitting client's public IP for the application
// audit trail. Best-effort: implementations return "unknown" on any failure
// and must never block a submission.
type IPLookup interface {
	LookupIP() string
}

type IPInfoClient struct {
	URL    string
	client *http.Client
}

func NewIPInfoClient(url string) *IPInfoClient {
	return &IPInfoClient{
		URL: url,
		client: &http.Client{
			Timeout: 3 * time.Second,
		},
	}
}

type ipInfoResponse struct {
	IP string `json:"ip"`
}

func (s *IPInfoClient) LookupIP() string {
	resp, err := s.client.Get(s.URL)
	if err != nil {
		return "unknown"
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "unknown"
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "unknown"
	}

	var parsed ipInfoResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.IP == "" {
		return "unknown"
	}

	return parsed.IP
}
