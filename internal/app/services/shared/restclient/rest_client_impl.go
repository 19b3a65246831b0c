package restclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"pathlab-client/internal/app/config"
	"pathlab-client/internal/app/contracts"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type restClient struct {
	BaseUrl       string
	HttpClient    *http.Client
	TokenProvider contracts.TokenProvider
	Log           *zap.Logger
}

// NewRestClient builds the chokepoint every backend call flows through.
// tokenProvider may be nil; requests then go out unauthenticated.
func NewRestClient(internalConfig *config.InternalConfig, tokenProvider contracts.TokenProvider, logger *zap.Logger) contracts.RestClient {
	httpClient := &http.Client{}
	if internalConfig.Backend.TimeoutInSecond > 0 {
		httpClient.Timeout = time.Duration(internalConfig.Backend.TimeoutInSecond) * time.Second
	}
	return &restClient{
		BaseUrl:       strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		HttpClient:    httpClient,
		TokenProvider: tokenProvider,
		Log:           logger,
	}
}

func (c *restClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.doRequest(ctx, constvars.MethodGet, path, nil, out)
}

func (c *restClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doRequest(ctx, constvars.MethodPost, path, body, out)
}

func (c *restClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doRequest(ctx, constvars.MethodPut, path, body, out)
}

func (c *restClient) Delete(ctx context.Context, path string, out interface{}) error {
	return c.doRequest(ctx, constvars.MethodDelete, path, nil, out)
}

func (c *restClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	start := time.Now()
	c.Log.Info("restClient request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingPathKey, path),
	)

	var bodyReader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, bodyReader)
	if err != nil {
		c.Log.Error("restClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBuildRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("restClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, c.BaseUrl+path),
			zap.Error(err),
		)
		return exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("restClient error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("restClient unexpected response status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
			zap.String(constvars.LoggingResponseKey, string(bodyBytes)),
		)
		return exceptions.ErrBackendStatus(resp.StatusCode, string(bodyBytes))
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	if strings.Contains(contentType, constvars.MIMEApplicationJSON) {
		if out != nil {
			if err := json.Unmarshal(bodyBytes, out); err != nil {
				c.Log.Error("restClient error decoding response",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingPathKey, path),
					zap.Error(err),
				)
				return exceptions.ErrDecodeResponse(err, path)
			}
		}
	} else if textOut, ok := out.(*string); ok {
		// A few endpoints intentionally answer with plain text.
		*textOut = string(bodyBytes)
	}

	c.Log.Info("restClient request succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingPathKey, path),
		zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return nil
}

func (c *restClient) GetBytes(ctx context.Context, path string) (string, []byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("restClient binary request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		return "", nil, exceptions.ErrBuildRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("restClient error sending binary request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("restClient unexpected binary response status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
		)
		return "", nil, exceptions.ErrBackendStatus(resp.StatusCode, string(bodyBytes))
	}

	return resp.Header.Get(constvars.HeaderContentType), bodyBytes, nil
}

// setHeaders must never fail: an unreadable token means no token.
func (c *restClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.TokenProvider == nil {
		return
	}
	if token := c.TokenProvider.CurrentToken(); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
}
