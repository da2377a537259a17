package openmeteo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

// CodeError is returned when the provider answers with a non-200 status.
type CodeError struct {
	StatusCode int
}

func (e CodeError) Error() string {
	return fmt.Sprintf("open-meteo responded with code %v", e.StatusCode)
}

type Client struct {
	baseClient *http.Client
	baseURL    *url.URL
}

func NewClient(baseClient *http.Client, baseURLString string) (*Client, error) {
	if baseClient == nil {
		baseClient = &http.Client{}
	}

	baseURL, err := url.Parse(baseURLString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base URL")
	}

	return &Client{
		baseClient: baseClient,
		baseURL:    baseURL,
	}, nil
}

func (c *Client) get(ctx context.Context, pth string, query url.Values) (io.ReadCloser, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, pth)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.baseClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to do request")
	}

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		return nil, CodeError{StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
