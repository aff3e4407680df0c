// Package whatsapp is an HTTP client for an Evolution-style WhatsApp gateway.
// One named instance maps to one barbershop session.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ConnectionState is the gateway's view of an instance. A "open" state with
// an empty OwnerJid means the gateway believes the session is live but it was
// never paired, which is the ghost case the reconciler resets.
type ConnectionState struct {
	InstanceName string `json:"instanceName"`
	State        string `json:"state"`
	OwnerJid     string `json:"wuid"`
	PhoneNumber  string `json:"phoneNumber"`
}

type QrCode struct {
	Base64 string `json:"base64"`
	Code   string `json:"code"`
}

type InstanceInfo struct {
	InstanceName string `json:"instanceName"`
	Status       string `json:"status"`
	OwnerJid     string `json:"owner"`
}

func (c *Client) makeRequest(ctx context.Context, method, endpoint string, payload interface{}, out interface{}) error {
	url := c.baseURL + endpoint

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) CreateInstance(ctx context.Context, instanceName string) error {
	payload := map[string]interface{}{
		"instanceName": instanceName,
		"qrcode":       true,
	}
	return c.makeRequest(ctx, http.MethodPost, "/instance/create", payload, nil)
}

func (c *Client) DeleteInstance(ctx context.Context, instanceName string) error {
	return c.makeRequest(ctx, http.MethodDelete, "/instance/delete/"+instanceName, nil, nil)
}

func (c *Client) RestartInstance(ctx context.Context, instanceName string) error {
	return c.makeRequest(ctx, http.MethodPut, "/instance/restart/"+instanceName, nil, nil)
}

func (c *Client) Logout(ctx context.Context, instanceName string) error {
	return c.makeRequest(ctx, http.MethodDelete, "/instance/logout/"+instanceName, nil, nil)
}

// Connect asks the gateway for a fresh pairing QR code.
func (c *Client) Connect(ctx context.Context, instanceName string) (*QrCode, error) {
	var resp struct {
		QrCode QrCode `json:"qrcode"`
		Base64 string `json:"base64"`
	}
	if err := c.makeRequest(ctx, http.MethodGet, "/instance/connect/"+instanceName, nil, &resp); err != nil {
		return nil, err
	}
	// Some gateway versions return the base64 at the top level.
	if resp.QrCode.Base64 == "" && resp.Base64 != "" {
		resp.QrCode.Base64 = resp.Base64
	}
	return &resp.QrCode, nil
}

func (c *Client) GetConnectionState(ctx context.Context, instanceName string) (*ConnectionState, error) {
	var resp struct {
		Instance ConnectionState `json:"instance"`
	}
	if err := c.makeRequest(ctx, http.MethodGet, "/instance/connectionState/"+instanceName, nil, &resp); err != nil {
		return nil, err
	}
	resp.Instance.InstanceName = instanceName
	return &resp.Instance, nil
}

func (c *Client) FetchInstances(ctx context.Context) ([]InstanceInfo, error) {
	var resp []struct {
		Instance InstanceInfo `json:"instance"`
	}
	if err := c.makeRequest(ctx, http.MethodGet, "/instance/fetchInstances", nil, &resp); err != nil {
		return nil, err
	}
	infos := make([]InstanceInfo, len(resp))
	for i, r := range resp {
		infos[i] = r.Instance
	}
	return infos, nil
}

// SetWebhook registers the callback URL for connection.update events. It must
// be re-applied whenever the instance is recreated; the gateway drops the
// registration with the session.
func (c *Client) SetWebhook(ctx context.Context, instanceName, webhookURL string) error {
	payload := map[string]interface{}{
		"url":     webhookURL,
		"enabled": true,
		"events":  []string{"connection.update", "qrcode.updated"},
	}
	return c.makeRequest(ctx, http.MethodPost, "/webhook/set/"+instanceName, payload, nil)
}

func (c *Client) SendText(ctx context.Context, instanceName, phone, message string) error {
	payload := map[string]interface{}{
		"number": phone,
		"textMessage": map[string]string{
			"text": message,
		},
	}
	return c.makeRequest(ctx, http.MethodPost, "/message/sendText/"+instanceName, payload, nil)
}
