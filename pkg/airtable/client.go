// Package airtable is a minimal client for the Airtable REST API,
// covering the select/find/update operations the roster needs.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// ErrRecordNotFound is returned by Find when the record id does not exist.
var ErrRecordNotFound = errors.New("record not found")

// Record is a single row of an Airtable table.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// String returns the named field as a string, or "" when absent or non-string.
func (r Record) String(field string) string {
	s, _ := r.Fields[field].(string)
	return s
}

// Client calls one Airtable base over HTTP.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	baseID     string
	baseURL    string // overridable for tests
}

// NewClient creates a client for the given base. A nil httpClient falls back
// to http.DefaultClient.
func NewClient(httpClient *http.Client, logger *slog.Logger, apiKey, baseID string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		baseID:     baseID,
		baseURL:    defaultBaseURL,
	}
}

// SetBaseURL points the client at a different API endpoint. Tests use this to
// target a local server.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// EqualsFormula builds a filterByFormula equality predicate on a single field,
// escaping quotes in the value so it cannot break out of the string literal.
func EqualsFormula(field, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	return fmt.Sprintf(`{%s} = "%s"`, field, value)
}

type recordList struct {
	Records []Record `json:"records"`
}

// Select returns the records of a table matching a filterByFormula expression.
// An empty result is not an error.
func (c *Client) Select(ctx context.Context, table, formula string) ([]Record, error) {
	q := url.Values{}
	if formula != "" {
		q.Set("filterByFormula", formula)
	}
	endpoint := c.tableURL(table)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var list recordList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode record list: %w", err)
	}
	return list.Records, nil
}

// Find fetches a single record by id.
func (c *Client) Find(ctx context.Context, table, id string) (Record, error) {
	body, err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+url.PathEscape(id), nil)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// Update patches the given fields of a record and returns the updated record.
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]any) (Record, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return Record{}, fmt.Errorf("encode update: %w", err)
	}

	body, err := c.do(ctx, http.MethodPatch, c.tableURL(table)+"/"+url.PathEscape(id), payload)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + "/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("airtable request failed",
			slog.String("method", method),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrRecordNotFound
	}
	if resp.StatusCode >= 400 {
		c.logger.Error("airtable returned error status",
			slog.String("method", method),
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, fmt.Errorf("airtable status %d: %s", resp.StatusCode, apiErrorMessage(body))
	}

	return body, nil
}

// apiErrorMessage pulls the message out of an Airtable error payload, falling
// back to the raw body.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return strings.TrimSpace(string(body))
}
