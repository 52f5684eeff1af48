package response_models

// YouTubeStats mirrors the channel statistics block. "current" is the
// headline number charted by the dashboard.
type YouTubeStats struct {
	Current     uint64 `json:"current"`
	Subscribers uint64 `json:"subscribers"`
	Views       uint64 `json:"views"`
	Videos      uint64 `json:"videos"`
}

type MailchimpStats struct {
	Current int64 `json:"current"`
}

// DiscordStats carries guild counts plus 7-day insights. Insights need
// a Community server with 500+ members; when the upstream refuses them
// the fields stay null rather than failing the whole response.
type DiscordStats struct {
	Online       int64 `json:"online"`
	TotalMembers int64 `json:"total_members"`

	NewMembers7d        *int64 `json:"new_members_7d"`
	Messages7d          *int64 `json:"messages_7d"`
	ActiveMembers7d     *int64 `json:"active_members_7d"`
	VoiceParticipants7d *int64 `json:"voice_participants_7d"`
}

type AnalyticsStats struct {
	ActiveUsers7d int64 `json:"active_users_7d"`
	Sessions7d    int64 `json:"sessions_7d"`
	Pageviews7d   int64 `json:"pageviews_7d"`
}
