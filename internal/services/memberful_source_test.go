package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

func memberfulTestClient(t *testing.T, handler http.HandlerFunc) *MemberfulClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewMemberfulClient(config.MemberfulConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
}

func TestMemberfulFetchSubscriptions(t *testing.T) {
	client := memberfulTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"data": {"subscriptions": {"edges": [
				{"node": {"active": true, "createdAt": "2025-04-01T00:00:00Z",
					"plan": {"priceCents": 1000, "name": "Monthly"}}},
				{"node": {"active": false, "createdAt": 1714521600,
					"expiresAt": "2025-06-01T00:00:00Z",
					"plan": {"priceCents": 12000, "name": "Annual Plan"}}}
			]}}
		}`))
	})

	records, err := client.FetchSubscriptions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Active)
	assert.Equal(t, "Monthly", records[0].PlanLabel)
	assert.Equal(t, int64(1000), records[0].PriceCents)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), records[0].CreatedAt)
	assert.True(t, records[0].ExpiresAt.IsZero())

	assert.False(t, records[1].Active)
	assert.Equal(t, int64(12000), records[1].PriceCents)
	assert.Equal(t, time.Unix(1714521600, 0).UTC(), records[1].CreatedAt)
	assert.False(t, records[1].ExpiresAt.IsZero())
}

// A price the upstream mangled becomes 0 instead of dropping the
// record or failing the fetch.
func TestMemberfulMalformedPriceReadsZero(t *testing.T) {
	client := memberfulTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"data": {"subscriptions": {"edges": [
				{"node": {"active": true, "createdAt": "2025-04-01T00:00:00Z",
					"plan": {"priceCents": "not-a-number", "name": "Monthly"}}},
				{"node": {"active": true, "createdAt": "2025-04-01T00:00:00Z",
					"plan": {"priceCents": null, "name": "Monthly"}}}
			]}}
		}`))
	})

	records, err := client.FetchSubscriptions(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(0), records[0].PriceCents)
	assert.Equal(t, int64(0), records[1].PriceCents)
}

func TestMemberfulGraphQLErrorEscalates(t *testing.T) {
	client := memberfulTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "invalid token"}]}`))
	})

	_, err := client.FetchSubscriptions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestMemberfulNonSuccessStatusEscalates(t *testing.T) {
	client := memberfulTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchSubscriptions(context.Background())
	assert.ErrorIs(t, err, utils.ErrUpstreamUnavailable)
}

func TestMemberfulMissingCredentials(t *testing.T) {
	client := NewMemberfulClient(config.MemberfulConfig{})

	_, err := client.FetchSubscriptions(context.Background())
	assert.ErrorIs(t, err, utils.ErrUpstreamNotConfigured)
}
