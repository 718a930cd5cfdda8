package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/utils"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for cfg.Server. A
// host without a scheme is treated as http. cfg.Token, when set, is used
// for authenticated requests right away.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts credentials and keeps the returned token. The
// Authorization header wins over the body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (string, error) {
	var body models.TokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&body).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := body.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return "", fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}
	if token == "" {
		return "", ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("token stored")
	return token, nil
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var message models.Message
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&message).
		Post("/api/message/")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	return message, mapHTTPError(resp)
}

// ListMessages asks for at most limit messages; zero means all.
func (h *httpServerAdapter) ListMessages(ctx context.Context, limit uint64) ([]models.Message, error) {
	var messages []models.Message
	req := h.authedRequest(ctx).SetResult(&messages)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/message/")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return messages, nil
}

func (h *httpServerAdapter) GetMessage(ctx context.Context, messageID int64) (models.Message, error) {
	var message models.Message
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(messageID, 10)).
		SetResult(&message).
		Get("/api/message/{id}")
	if err != nil {
		return models.Message{}, fmt.Errorf("get message request: %w", err)
	}
	return message, mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateMessage(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (models.Message, error) {
	var message models.Message
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(messageID, 10)).
		SetBody(req).
		SetResult(&message).
		Put("/api/message/{id}")
	if err != nil {
		return models.Message{}, fmt.Errorf("update message request: %w", err)
	}
	return message, mapHTTPError(resp)
}

func (h *httpServerAdapter) DecryptMessage(ctx context.Context, req models.DecryptMessageRequest) (models.DecryptMessageResponse, error) {
	var decrypted models.DecryptMessageResponse
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&decrypted).
		Post("/api/message/decrypt")
	if err != nil {
		return models.DecryptMessageResponse{}, fmt.Errorf("decrypt message request: %w", err)
	}
	return decrypted, mapHTTPError(resp)
}

func (h *httpServerAdapter) Intercept(ctx context.Context) (models.InterceptResult, error) {
	var result models.InterceptResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/mitm/intercept")
	if err != nil {
		return models.InterceptResult{}, fmt.Errorf("intercept request: %w", err)
	}
	return result, mapHTTPError(resp)
}

func (h *httpServerAdapter) NewCaptcha(ctx context.Context) (models.CaptchaChallenge, error) {
	var challenge models.CaptchaChallenge
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&challenge).
		Post("/api/captcha/new")
	if err != nil {
		return models.CaptchaChallenge{}, fmt.Errorf("new captcha request: %w", err)
	}
	return challenge, mapHTTPError(resp)
}

func (h *httpServerAdapter) VerifyCaptcha(ctx context.Context, answer models.CaptchaAnswer) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(answer).
		Post("/api/captcha/verify")
	if err != nil {
		return fmt.Errorf("verify captcha request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
