package wbapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Gunvolt24/wb_tariffs/internal/domain"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
)

// Проверка, что Client удовлетворяет порту источника тарифов.
var _ ports.TariffSource = (*Client)(nil)

const (
	defaultBaseURL = "https://common-api.wildberries.ru/api/v1"
	defaultTimeout = 30 * time.Second
	dateLayout     = "2006-01-02"
)

// ErrTimeout — запрос не уложился в таймаут клиента.
var ErrTimeout = errors.New("wb api: request timeout")

// StatusError — не-2xx ответ WB API.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wb api: unexpected status %s", e.Status)
}

// Config — настройки клиента WB API.
type Config struct {
	BaseURL string
	Token   string // опциональный bearer-токен
	Timeout time.Duration
}

// Client — клиент одного эндпоинта WB: GET /tariffs/box.
// Ретраев нет: политика повторов — забота планировщика, не клиента.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        ports.Logger
}

// NewClient — конструктор. Пустые поля конфига заменяются значениями по умолчанию.
func NewClient(cfg Config, log ports.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      cfg.Token,
		log:        log,
	}
}

// Обёртка ответа WB: полезные данные завёрнуты в response.data.
type tariffsBoxResponse struct {
	Response struct {
		Data domain.TariffsSnapshot `json:"data"`
	} `json:"response"`
}

// GetBoxTariffs — забирает тарифный срез на дату (YYYY-MM-DD).
// Пустая date означает сегодняшнюю календарную дату UTC.
func (c *Client) GetBoxTariffs(ctx context.Context, date string) (*domain.TariffsSnapshot, error) {
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	}
	reqURL := c.baseURL + "/tariffs/box?date=" + url.QueryEscape(date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("wb api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "wb-tariffs-service/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Infof(ctx, "wb api: GET %s", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w (%s)", ErrTimeout, c.httpClient.Timeout)
		}
		return nil, fmt.Errorf("wb api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	var envelope tariffsBoxResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("wb api: decode response: %w", err)
	}

	snapshot := envelope.Response.Data
	c.log.Infof(ctx, "wb api: got tariffs for %d warehouses (date=%s)", len(snapshot.WarehouseList), date)
	return &snapshot, nil
}

// isTimeout — таймаут http.Client приходит как *url.Error с Timeout()==true;
// отмена по дедлайну контекста — как context.DeadlineExceeded.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
