package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с внешним сервисом уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConflictNotification отправляет уведомление о конфликте расписания
func (c *Client) SendConflictNotification(ctx context.Context, n *ConflictNotification) error {
	url := fmt.Sprintf("%s/internal/notifications/conflicts", c.baseURL)

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendWithGracefulDegradation отправляет уведомление с graceful degradation
// При недоступности сервиса возвращает ErrServiceDegraded: сканер продолжает
// работу, конфликт остается непомеченным и уведомление уйдет при следующем проходе
func (c *Client) SendWithGracefulDegradation(ctx context.Context, n *ConflictNotification) error {
	c.log.Info("Sending conflict notification: room=%s day=%s severity=%s", n.RoomID, n.Day, n.Severity)

	if err := c.SendConflictNotification(ctx, n); err != nil {
		c.log.Error("NotifyService unavailable, applying graceful degradation for room=%s day=%s: %v", n.RoomID, n.Day, err)
		return fmt.Errorf("%w: room=%s, day=%s, error=%v", ErrServiceDegraded, n.RoomID, n.Day, err)
	}

	c.log.Info("Conflict notification sent: room=%s day=%s", n.RoomID, n.Day)
	return nil
}
