package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

type DiscordService interface {
	GuildStats(ctx context.Context) (*resp.DiscordStats, error)
}

type discordService struct {
	HTTP *http.Client
	cfg  config.DiscordConfig
}

func NewDiscordService(cfg config.DiscordConfig) DiscordService {
	return &discordService{
		HTTP: &http.Client{Timeout: 15 * time.Second},
		cfg:  cfg,
	}
}

func (s *discordService) baseURL() string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	return "https://discord.com/api/v10"
}

func (s *discordService) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL()+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bot "+s.cfg.BotToken)
	return s.HTTP.Do(req)
}

type discordInsightDay struct {
	Value int64 `json:"value"`
}

func sumDays(days []discordInsightDay) *int64 {
	var total int64
	for _, d := range days {
		total += d.Value
	}
	return &total
}

func (s *discordService) GuildStats(ctx context.Context) (*resp.DiscordStats, error) {
	if s.cfg.BotToken == "" || s.cfg.GuildID == "" {
		return nil, fmt.Errorf("%w: discord", utils.ErrUpstreamNotConfigured)
	}

	res, err := s.get(ctx, fmt.Sprintf("/guilds/%s?with_counts=true", s.cfg.GuildID))
	if err != nil {
		return nil, utils.UpstreamError("discord", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, utils.UpstreamError("discord", fmt.Errorf("status %s", res.Status))
	}

	var guild struct {
		PresenceCount int64 `json:"approximate_presence_count"`
		MemberCount   int64 `json:"approximate_member_count"`
	}
	if err := json.NewDecoder(res.Body).Decode(&guild); err != nil {
		return nil, utils.UpstreamError("discord", err)
	}

	stats := &resp.DiscordStats{
		Online:       guild.PresenceCount,
		TotalMembers: guild.MemberCount,
	}
	s.attachInsights(ctx, stats)
	return stats, nil
}

// attachInsights is best-effort: insights need a Community server with
// 500+ members, so a refusal leaves the fields null instead of failing
// the guild response.
func (s *discordService) attachInsights(ctx context.Context, stats *resp.DiscordStats) {
	res, err := s.get(ctx, fmt.Sprintf("/guilds/%s/insights/member-insights?interval=7", s.cfg.GuildID))
	if err != nil {
		log.Printf("discord insights unavailable: %v", err)
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Println("discord insights not available (requires 500+ members or Community server)")
		return
	}

	var insights struct {
		MembersJoined     []discordInsightDay `json:"members_joined"`
		Communicators     []discordInsightDay `json:"communicators"`
		MessagesSent      []discordInsightDay `json:"messages_sent"`
		VoiceParticipants []discordInsightDay `json:"voice_participants"`
	}
	if err := json.NewDecoder(res.Body).Decode(&insights); err != nil {
		log.Printf("discord insights decode failed: %v", err)
		return
	}

	if insights.MembersJoined != nil {
		stats.NewMembers7d = sumDays(insights.MembersJoined)
	}
	if insights.Communicators != nil {
		stats.ActiveMembers7d = sumDays(insights.Communicators)
	}
	if insights.MessagesSent != nil {
		stats.Messages7d = sumDays(insights.MessagesSent)
	}
	if insights.VoiceParticipants != nil {
		stats.VoiceParticipants7d = sumDays(insights.VoiceParticipants)
	}
}
