package controllers

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/services"
	"pulseboard/pkg/utils"
)

type MembershipController struct {
	membershipService services.MembershipService
}

func NewMembershipController(membershipService services.MembershipService) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

// GetMembership godoc
// @Summary Subscription economics
// @Description Active subscriber count plus MRR and LTV in whole currency units
// @Tags Membership
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/memberful [get]
func (m *MembershipController) GetMembership(c *gin.Context) {
	summary, err := m.membershipService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Membership summary fetched successfully")
}

// GetRetention godoc
// @Summary Cohort retention and churn
// @Description 7/30/90-day signup-cohort retention and whole-population monthly churn, one decimal place
// @Tags Membership
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/retention [get]
func (m *MembershipController) GetRetention(c *gin.Context) {
	stats, err := m.membershipService.Retention(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Retention stats fetched successfully")
}
