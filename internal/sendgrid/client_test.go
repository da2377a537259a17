package sendgrid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weathermail/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFrom = service.EmailAddress{Address: "weather@example.com"}
	testTo   = []service.EmailAddress{
		{Address: "one@example.com"},
		{Name: "Two", Address: "two@example.com"},
	}
	testEmail = service.Email{
		Subject: "Inwood Weather Brief — 2025-07-14",
		HTML:    "<h2>Inwood Weather</h2>",
	}
)

func TestSendEmailSubmitsMailRequest(t *testing.T) {
	var gotBody mailRequest
	var gotAuth, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)

		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "SG.test-key")
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), testFrom, testTo, testEmail)
	require.NoError(t, err)

	assert.Equal(t, "Bearer SG.test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	require.Len(t, gotBody.Personalizations, 1)
	require.Len(t, gotBody.Personalizations[0].To, 2)
	assert.Equal(t, "one@example.com", gotBody.Personalizations[0].To[0].Email)
	assert.Equal(t, "Two", gotBody.Personalizations[0].To[1].Name)

	assert.Equal(t, "weather@example.com", gotBody.From.Email)
	assert.Equal(t, testEmail.Subject, gotBody.Subject)

	require.Len(t, gotBody.Content, 1)
	assert.Equal(t, "text/html", gotBody.Content[0].Type)
	assert.Equal(t, testEmail.HTML, gotBody.Content[0].Value)
}

func TestSendEmailRejected(t *testing.T) {
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "SG.bad-key")
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), testFrom, testTo, testEmail)
	require.Error(t, err)

	// one attempt, no retry
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "authorization grant is invalid")
}

func TestSendEmailNoRecipients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be made")
	}))
	defer srv.Close()

	client, err := NewClient(srv.Client(), srv.URL, "SG.test-key")
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), testFrom, nil, testEmail)
	assert.Error(t, err)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(nil, "https://api.sendgrid.com", "")
	assert.Error(t, err)
}
