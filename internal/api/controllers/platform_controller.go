package controllers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/services"
	"pulseboard/pkg/utils"
)

// PlatformController exposes the four pass-through fetchers. Each
// handler is one upstream call plus response shaping; the numbers are
// reported as the upstream gave them.
type PlatformController struct {
	youtube   services.YouTubeService
	mailchimp services.MailchimpService
	discord   services.DiscordService
	analytics services.AnalyticsService
}

func NewPlatformController(
	youtube services.YouTubeService,
	mailchimp services.MailchimpService,
	discord services.DiscordService,
	analytics services.AnalyticsService) *PlatformController {

	return &PlatformController{
		youtube:   youtube,
		mailchimp: mailchimp,
		discord:   discord,
		analytics: analytics,
	}
}

// GetYouTube godoc
// @Summary Channel statistics
// @Description Subscriber, view and video counts for the configured channel
// @Tags Platforms
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/youtube [get]
func (p *PlatformController) GetYouTube(c *gin.Context) {
	stats, err := p.youtube.ChannelStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "YouTube stats fetched successfully")
}

func (p *PlatformController) GetMailchimp(c *gin.Context) {
	stats, err := p.mailchimp.ListStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Mailchimp stats fetched successfully")
}

func (p *PlatformController) GetDiscord(c *gin.Context) {
	stats, err := p.discord.GuildStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Discord stats fetched successfully")
}

func (p *PlatformController) GetAnalytics(c *gin.Context) {
	stats, err := p.analytics.WeeklyStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Analytics stats fetched successfully")
}
