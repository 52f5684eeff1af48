package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

type MailchimpService interface {
	ListStats(ctx context.Context) (*resp.MailchimpStats, error)
}

type mailchimpService struct {
	HTTP *http.Client
	cfg  config.MailchimpConfig
}

func NewMailchimpService(cfg config.MailchimpConfig) MailchimpService {
	return &mailchimpService{
		HTTP: &http.Client{Timeout: 15 * time.Second},
		cfg:  cfg,
	}
}

func (s *mailchimpService) baseURL() string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	return fmt.Sprintf("https://%s.api.mailchimp.com", s.cfg.Server)
}

func (s *mailchimpService) ListStats(ctx context.Context) (*resp.MailchimpStats, error) {
	if s.cfg.APIKey == "" || s.cfg.ListID == "" {
		return nil, fmt.Errorf("%w: mailchimp", utils.ErrUpstreamNotConfigured)
	}

	url := fmt.Sprintf("%s/3.0/lists/%s", s.baseURL(), s.cfg.ListID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	res, err := s.HTTP.Do(req)
	if err != nil {
		return nil, utils.UpstreamError("mailchimp", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var apiErr struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Detail != "" {
			return nil, utils.UpstreamError("mailchimp", errors.New(apiErr.Detail))
		}
		return nil, utils.UpstreamError("mailchimp", fmt.Errorf("status %s", res.Status))
	}

	var decoded struct {
		Stats struct {
			MemberCount int64 `json:"member_count"`
		} `json:"stats"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, utils.UpstreamError("mailchimp", err)
	}

	return &resp.MailchimpStats{Current: decoded.Stats.MemberCount}, nil
}
