package legacyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fitstudio/internal/domain"
)

// Endpoints served by the legacy studio backend.
const (
	PaymentsPath = "/DailyTierUpgradePaymentData"
	RefundsPath  = "/DailyTierUpgradeRefundData"
)

type httpSource struct {
	client  *http.Client
	baseURL string
}

// NewHTTPSource returns an AnalyticsSource that reads daily datasets from the
// legacy backend at baseURL and normalises them into canonical records.
func NewHTTPSource(client *http.Client, baseURL string) domain.AnalyticsSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{client: client, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *httpSource) DailyPayments(ctx context.Context) ([]domain.Record, error) {
	raw, err := s.fetch(ctx, PaymentsPath)
	if err != nil {
		return nil, err
	}
	return domain.PaymentRecordAdapter.Normalize(raw), nil
}

func (s *httpSource) DailyRefunds(ctx context.Context) ([]domain.Record, error) {
	raw, err := s.fetch(ctx, RefundsPath)
	if err != nil {
		return nil, err
	}
	return domain.RefundRecordAdapter.Normalize(raw), nil
}

func (s *httpSource) fetch(ctx context.Context, path string) ([]map[string]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("legacy api %s returned status: %d", path, resp.StatusCode)
	}

	var data []map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return data, nil
}
