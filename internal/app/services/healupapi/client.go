package healupapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/lakshana011/HealUp/internal/pkg/constvars"
	"github.com/lakshana011/HealUp/internal/pkg/exceptions"
)

// RestClient is the single HTTP surface to the HealUp API. Every resource
// client goes through it, so bearer injection and error surfacing stay
// uniform across the codebase.
type RestClient struct {
	BaseUrl    string
	httpClient *http.Client
}

func NewRestClient(baseUrl string, timeout time.Duration) *RestClient {
	return &RestClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RestClient) Get(ctx context.Context, path, token, resource string, out interface{}) error {
	return c.do(ctx, constvars.MethodGet, path, token, resource, nil, out)
}

func (c *RestClient) Post(ctx context.Context, path, token, resource string, body, out interface{}) error {
	return c.do(ctx, constvars.MethodPost, path, token, resource, body, out)
}

func (c *RestClient) Put(ctx context.Context, path, token, resource string, body, out interface{}) error {
	return c.do(ctx, constvars.MethodPut, path, token, resource, body, out)
}

func (c *RestClient) do(ctx context.Context, method, path, token, resource string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrReadUpstreamResponse(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMovedPermanently {
		return exceptions.ErrUpstreamRejected(resp.StatusCode, extractMessage(bodyBytes), resource)
	}

	if out != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return exceptions.ErrDecodeUpstreamResponse(err, resource)
		}
	}
	return nil
}

// extractMessage pulls the "message" field the API puts on error bodies.
// Anything unparseable comes back empty and the caller falls back to a
// status-code message.
func extractMessage(bodyBytes []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
