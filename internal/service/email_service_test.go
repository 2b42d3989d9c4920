package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/service/mocks"
)

func testEmailConfig(host string) config.EmailConfig {
	return config.EmailConfig{
		SendGridAPIKey:  "SG.test-key",
		FromEmail:       "noreply@example.com",
		ToEmail:         "owner@example.com",
		SendGridAPIHost: host,
		Timeout:         2 * time.Second,
	}
}

// sendGridPayload is the subset of the v3 mail/send body the tests inspect.
type sendGridPayload struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	From struct {
		Email string `json:"email"`
	} `json:"from"`
	ReplyTo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"reply_to"`
	Subject string `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func TestSendContactEmailThroughSendGrid(t *testing.T) {
	var received sendGridPayload
	var authHeader, path, method string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		path = r.URL.Path
		method = r.Method
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	svc := NewEmailService(testEmailConfig(srv.URL))
	ok := svc.SendContactEmail(context.Background(), "Jane Doe", "jane@example.com", "Hello, I'd like to discuss a project.")
	require.True(t, ok)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/v3/mail/send", path)
	assert.Equal(t, "Bearer SG.test-key", authHeader)
	assert.Equal(t, "Portfolio Contact: Jane Doe", received.Subject)
	assert.Equal(t, "noreply@example.com", received.From.Email)
	require.Len(t, received.Personalizations, 1)
	require.Len(t, received.Personalizations[0].To, 1)
	assert.Equal(t, "owner@example.com", received.Personalizations[0].To[0].Email)
	assert.Equal(t, "jane@example.com", received.ReplyTo.Email)
	require.Len(t, received.Content, 1)
	assert.Equal(t, "text/plain", received.Content[0].Type)
	assert.Contains(t, received.Content[0].Value, "Name: Jane Doe")
	assert.Contains(t, received.Content[0].Value, "Email: jane@example.com")
	assert.Contains(t, received.Content[0].Value, "Hello, I'd like to discuss a project.")
}

func TestSendContactEmailProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
	}))
	defer srv.Close()

	svc := NewEmailService(testEmailConfig(srv.URL))
	assert.False(t, svc.SendContactEmail(context.Background(), "Jane", "jane@example.com", "Hello there, friend"))
}

func TestSendContactEmailTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testEmailConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond

	svc := NewEmailService(cfg)
	assert.False(t, svc.SendContactEmail(context.Background(), "Jane", "jane@example.com", "Hello there, friend"))
}

func TestSendContactEmailWithoutAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	// no EXPECT: any call to Send fails the test

	cfg := testEmailConfig("")
	cfg.SendGridAPIKey = ""

	svc := NewEmailServiceWithSender(cfg, sender)
	assert.False(t, svc.Configured())
	assert.False(t, svc.SendContactEmail(context.Background(), "Jane", "jane@example.com", "Hello there, friend"))
}

func TestSendContactEmailTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := NewEmailServiceWithSender(testEmailConfig(""), sender)
	assert.False(t, svc.SendContactEmail(context.Background(), "Jane", "jane@example.com", "Hello there, friend"))
}

func TestSendContactEmailAcceptsAny2xx(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockEmailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&rest.Response{StatusCode: http.StatusOK}, nil)

	svc := NewEmailServiceWithSender(testEmailConfig(""), sender)
	assert.True(t, svc.SendContactEmail(context.Background(), "Jane", "jane@example.com", "Hello there, friend"))
}

func TestBuildContactMailStripsHeaderInjection(t *testing.T) {
	msg := BuildContactMail("from@example.com", "to@example.com", "Eve\r\nBcc: all@example.com", "Eve@Example.com", "payload message")

	assert.Equal(t, "Portfolio Contact: Eve Bcc: all@example.com", msg.Subject)
	require.NotNil(t, msg.ReplyTo)
	assert.Equal(t, "eve@example.com", msg.ReplyTo.Address)
	require.Len(t, msg.Content, 1)
	assert.Equal(t, FormatContactBody("Eve\r\nBcc: all@example.com", "Eve@Example.com", "payload message"), msg.Content[0].Value)
}

func TestFormatContactBody(t *testing.T) {
	expected := "New contact form submission:\n\nName: Jane\nEmail: jane@example.com\n\nMessage:\nHello there\n"
	assert.Equal(t, expected, FormatContactBody("Jane", "jane@example.com", "Hello there"))
}
