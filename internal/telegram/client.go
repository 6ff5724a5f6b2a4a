// Package telegram is the single chokepoint for Bot API calls: multipart
// encoding, the HTTP POST itself, and classification of failures into
// transport, HTTP, size, and logical API errors.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.telegram.org"

	// callTimeout bounds a single API call, uploads included.
	callTimeout = 60 * time.Second
)

// Client issues Bot API calls for one bot credential. It keeps no state
// across calls and never retries.
type Client struct {
	token   string
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client for the public Bot API host.
func NewClient(token string) *Client {
	return NewClientURL(token, defaultBaseURL)
}

// NewClientURL returns a Client pointed at a specific API host. Used by
// tests to target a local server.
func NewClientURL(token, baseURL string) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: callTimeout},
	}
}

// Response is the Bot API envelope: ok plus either a result or an error
// code and description.
type Response struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

// BotInfo is the result payload of getMe.
type BotInfo struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

// SendPhoto posts a photo with a caption to a chat.
func (c *Client) SendPhoto(chatID, caption, photoPath string) error {
	fields := map[string]string{"chat_id": chatID, "caption": caption}
	_, err := c.call("sendPhoto", fields, []InputFile{{Field: "photo", Path: photoPath}})
	return err
}

// SendDocument posts a document to a chat.
func (c *Client) SendDocument(chatID, documentPath string) error {
	fields := map[string]string{"chat_id": chatID}
	_, err := c.call("sendDocument", fields, []InputFile{{Field: "document", Path: documentPath}})
	return err
}

// GetMe fetches the bot's own identity; used to validate the credential
// before a run.
func (c *Client) GetMe() (*BotInfo, error) {
	resp, err := c.call("getMe", nil, nil)
	if err != nil {
		return nil, err
	}
	var info BotInfo
	if err := json.Unmarshal(resp.Result, &info); err != nil {
		return nil, fmt.Errorf("decoding getMe result: %w", err)
	}
	return &info, nil
}

// call builds and POSTs one multipart Bot API request. Transport failures
// are returned wrapped, non-200 statuses as *HTTPError, and ok=false
// payloads as *APIError.
func (c *Client) call(method string, fields map[string]string, files []InputFile) (*Response, error) {
	body, contentType, err := EncodeMultipart(fields, files)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", contentType)

	httpResp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: network error: %w", method, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", method, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, &HTTPError{Status: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", method, err)
	}
	if !resp.OK {
		return nil, &APIError{Code: resp.ErrorCode, Description: resp.Description}
	}
	return &resp, nil
}
