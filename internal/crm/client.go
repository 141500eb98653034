// Package crm integrates with a GoHighLevel-style CRM: contact upsert on
// report submission and workflow triggers for follow-up sequences. All calls
// are best-effort from the caller's perspective; failures here must never
// block report generation.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Contact is the CRM-side identity for a respondent.
type Contact struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Company string `json:"companyName,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Client is a minimal CRM API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a client. An empty apiKey yields a disabled client;
// callers should check Enabled before use.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether the client is configured to make calls.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type upsertRequest struct {
	Contact      Contact        `json:"contact"`
	Tags         []string       `json:"tags,omitempty"`
	CustomFields map[string]any `json:"customFields,omitempty"`
}

type upsertResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

// UpsertContact creates or updates a contact and returns its CRM id.
func (c *Client) UpsertContact(ctx context.Context, contact Contact, tags []string, fields map[string]any) (string, error) {
	payload := upsertRequest{Contact: contact, Tags: tags, CustomFields: fields}

	var resp upsertResponse
	if err := c.post(ctx, "/contacts/upsert", payload, &resp); err != nil {
		return "", err
	}
	return resp.Contact.ID, nil
}

type workflowRequest struct {
	ContactID string `json:"contactId"`
	EventAt   string `json:"eventStartTime,omitempty"`
}

// TriggerWorkflow enrolls a contact into a workflow (e.g. report email
// delivery).
func (c *Client) TriggerWorkflow(ctx context.Context, contactID, workflowID string) error {
	payload := workflowRequest{
		ContactID: contactID,
		EventAt:   time.Now().UTC().Format(time.RFC3339),
	}
	path := fmt.Sprintf("/workflows/%s/subscribe", workflowID)
	return c.post(ctx, path, payload, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	if !c.Enabled() {
		return fmt.Errorf("crm client not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("crm request failed: %s: %s", resp.Status, data)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
