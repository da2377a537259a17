// Package sendgrid submits rendered messages to the SendGrid v3 mail API.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"

	"weathermail/internal/service"

	"github.com/pkg/errors"
)

const pathSend = "/v3/mail/send"

type Client struct {
	baseClient *http.Client
	baseURL    *url.URL
	apiKey     string
}

func NewClient(baseClient *http.Client, baseURLString, apiKey string) (*Client, error) {
	if baseClient == nil {
		baseClient = &http.Client{}
	}

	baseURL, err := url.Parse(baseURLString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse base URL")
	}

	if apiKey == "" {
		return nil, errors.New("API key is empty")
	}

	return &Client{
		baseClient: baseClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}, nil
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

func toAddress(a service.EmailAddress) address {
	return address{
		Email: a.Address,
		Name:  a.Name,
	}
}

// SendEmail submits the message for delivery. A 2xx response means SendGrid
// accepted it, not that it was delivered.
func (c *Client) SendEmail(ctx context.Context, from service.EmailAddress, to []service.EmailAddress, email service.Email) error {
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	recipients := make([]address, 0, len(to))
	for _, addr := range to {
		recipients = append(recipients, toAddress(addr))
	}

	body, err := json.Marshal(mailRequest{
		Personalizations: []personalization{{To: recipients}},
		From:             toAddress(from),
		Subject:          email.Subject,
		Content: []content{{
			Type:  "text/html",
			Value: email.HTML,
		}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal mail request")
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, pathSend)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.baseClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to do request")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// SendGrid explains rejections in the body, keep a short excerpt
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("sendgrid responded with code %v: %s", resp.StatusCode, excerpt)
	}

	return nil
}
