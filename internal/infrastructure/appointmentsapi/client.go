package appointmentsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"appointment-editor/config"
	"appointment-editor/internal/domain/entity"
	domainRepo "appointment-editor/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// maxErrorBody bounds how much of a failed response is kept in APIError
const maxErrorBody = 4 << 10

// APIError is a non-2xx answer from the appointments API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("appointments api returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the REST API that owns appointments
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	log        *logrus.Logger
}

func NewClient(cfg config.AppointmentsAPIConfig, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		log:        log,
	}
}

var _ domainRepo.AppointmentRepository = (*Client)(nil)

// Save posts a new appointment. The created appointment is returned when the
// API echoes it back; an empty success body yields nil.
func (c *Client) Save(ctx context.Context, req *entity.AppointmentRequest) (*entity.Appointment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode appointment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/appointment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create save request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(httpReq)
	if err != nil {
		c.log.WithFields(logrus.Fields{"patient": req.PatientUUID, "error": err}).Error("appointments.save_failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := readAPIError(resp)
		c.log.WithFields(logrus.Fields{"patient": req.PatientUUID, "status": resp.StatusCode}).Error("appointments.save_rejected")
		return nil, apiErr
	}

	appointment, err := decodeAppointment(resp.Body)
	if err != nil {
		return nil, err
	}
	if appointment != nil {
		c.log.WithField("uuid", appointment.UUID).Info("appointments.saved")
	}
	return appointment, nil
}

// FindByUUID fetches an appointment snapshot
func (c *Client) FindByUUID(ctx context.Context, appointmentUUID string) (*entity.Appointment, error) {
	endpoint := c.baseURL + "/appointment?" + url.Values{"uuid": {appointmentUUID}}.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create fetch request: %w", err)
	}

	resp, err := c.do(httpReq)
	if err != nil {
		c.log.WithFields(logrus.Fields{"uuid": appointmentUUID, "error": err}).Error("appointments.fetch_failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domainRepo.ErrAppointmentNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, readAPIError(resp)
	}

	appointment, err := decodeAppointment(resp.Body)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, domainRepo.ErrAppointmentNotFound
	}
	return appointment, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call appointments api: %w", err)
	}
	return resp, nil
}

func decodeAppointment(body io.Reader) (*entity.Appointment, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read appointments api response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var wire appointmentResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode appointments api response: %w", err)
	}
	return wire.toEntity(), nil
}

func readAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
