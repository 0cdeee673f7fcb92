package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

const bookingsPath = "/api/v1/bookings"

// Client клиент внешнего сервиса бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit отправляет готовое бронирование
func (c *Client) Submit(ctx context.Context, record domain.BookingRecord) error {
	payload, err := ToPayload(record)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := c.baseURL + bookingsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("Submitting booking: date=%s, time=%s, service=%s",
		payload.Date, payload.TimeSlot, payload.Service.ID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Booking API unavailable: %v", err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		c.log.Info("Booking accepted: date=%s, time=%s, status=%d", payload.Date, payload.TimeSlot, resp.StatusCode)
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotTaken, readErrorMessage(resp.Body))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, readErrorMessage(resp.Body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// ToPayload конвертирует запись мастера в тело запроса
func ToPayload(record domain.BookingRecord) (*BookingPayload, error) {
	if !record.IsComplete() {
		return nil, ErrIncompleteRecord
	}

	return &BookingPayload{
		Date:     record.Date.Format(domain.DateFormat),
		TimeSlot: record.TimeSlot.String(),
		Service: ServicePayload{
			ID:              record.Service.ID,
			Name:            record.Service.Name,
			DurationMinutes: record.Service.DurationMinutes,
			Price:           record.Service.Price,
		},
		Customer: CustomerPayload{
			Name:  record.Customer.Name,
			Email: record.Customer.Email,
			Phone: record.Customer.Phone,
			Notes: record.Customer.Notes,
		},
	}, nil
}

// readErrorMessage достаёт message из ErrorResponse, иначе возвращает тело как есть
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(r)
	if err != nil {
		return "failed to read response body"
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
