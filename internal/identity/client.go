// Package identity provides the admin client for the external identity
// provider. Token verification is handled separately by internal/auth; this
// client covers the account-management surface.
package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/BiglyEducated/BiglyEducated-StrongSight-SD/internal/domain"
)

// Client talks to the identity provider's admin REST API.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClient constructs a client with sane defaults.
func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// DeleteUser removes the identity-provider record for uid. A missing record
// surfaces as domain.ErrIdentityNotFound so callers can treat the cascade as
// already done on that side.
func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	endpoint := fmt.Sprintf("%s/v1/accounts/%s", c.baseURL, url.PathEscape(uid))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrIdentityNotFound, uid)
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("identity provider error (%d): %s", resp.StatusCode, body)
	}
	return nil
}
