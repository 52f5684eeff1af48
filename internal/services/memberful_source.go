package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pulseboard/internal/metrics"
	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

// SubscriptionSource supplies the bounded subscription list the
// metrics core aggregates over. The page size is fixed; anything the
// upstream cannot fit into one page is out of scope.
type SubscriptionSource interface {
	FetchSubscriptions(ctx context.Context) ([]metrics.SubscriptionRecord, error)
}

const subscriptionQuery = `{
  subscriptions(first: 1000) {
    edges {
      node {
        active
        createdAt
        expiresAt
        plan {
          priceCents
          name
        }
      }
    }
  }
}`

type MemberfulClient struct {
	HTTP *http.Client
	cfg  config.MemberfulConfig
}

func NewMemberfulClient(cfg config.MemberfulConfig) *MemberfulClient {
	return &MemberfulClient{
		HTTP: &http.Client{Timeout: 15 * time.Second},
		cfg:  cfg,
	}
}

func (c *MemberfulClient) endpoint() string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	return fmt.Sprintf("https://%s.memberful.com/api/graphql", c.cfg.Subdomain)
}

type memberfulPlan struct {
	PriceCents json.RawMessage `json:"priceCents"`
	Name       string          `json:"name"`
}

type memberfulNode struct {
	Active    bool            `json:"active"`
	CreatedAt json.RawMessage `json:"createdAt"`
	ExpiresAt json.RawMessage `json:"expiresAt"`
	Plan      memberfulPlan   `json:"plan"`
}

type memberfulResponse struct {
	Data struct {
		Subscriptions struct {
			Edges []struct {
				Node memberfulNode `json:"node"`
			} `json:"edges"`
		} `json:"subscriptions"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *MemberfulClient) FetchSubscriptions(ctx context.Context) ([]metrics.SubscriptionRecord, error) {
	if c.cfg.APIKey == "" || (c.cfg.Subdomain == "" && c.cfg.BaseURL == "") {
		return nil, fmt.Errorf("%w: memberful", utils.ErrUpstreamNotConfigured)
	}

	body, err := json.Marshal(map[string]string{"query": subscriptionQuery})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, utils.UpstreamError("memberful", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, utils.UpstreamError("memberful", fmt.Errorf("status %s", res.Status))
	}

	var decoded memberfulResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, utils.UpstreamError("memberful", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, utils.UpstreamError("memberful", errors.New(decoded.Errors[0].Message))
	}

	records := make([]metrics.SubscriptionRecord, 0, len(decoded.Data.Subscriptions.Edges))
	for _, edge := range decoded.Data.Subscriptions.Edges {
		n := edge.Node
		records = append(records, metrics.SubscriptionRecord{
			Active:     n.Active,
			CreatedAt:  parseTimestamp(n.CreatedAt),
			ExpiresAt:  parseTimestamp(n.ExpiresAt),
			PlanLabel:  n.Plan.Name,
			PriceCents: parsePriceCents(n.Plan.PriceCents),
		})
	}
	return records, nil
}

// parsePriceCents absorbs a malformed price as 0 so one bad record
// cannot poison the aggregate.
func parsePriceCents(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if v, err := asNumber.Int64(); err == nil {
			return v
		}
		if f, err := asNumber.Float64(); err == nil {
			return int64(f)
		}
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if v, err := strconv.ParseInt(asString, 10, 64); err == nil {
			return v
		}
	}
	return 0
}

// parseTimestamp accepts either an RFC3339 string or a unix-seconds
// number; a missing or unreadable value is the zero time.
func parseTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if t, err := time.Parse(time.RFC3339, asString); err == nil {
			return t
		}
		return time.Time{}
	}
	var asUnix int64
	if err := json.Unmarshal(raw, &asUnix); err == nil {
		return time.Unix(asUnix, 0).UTC()
	}
	return time.Time{}
}
