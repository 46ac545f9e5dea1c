package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Shubh17ss/locumbnb-sub000/config"
	"github.com/Shubh17ss/locumbnb-sub000/matching"
	"github.com/Shubh17ss/locumbnb-sub000/models"
	supa "github.com/supabase-community/supabase-go"
)

type ProfileHandler struct {
	supabase *supa.Client
	config   *config.Config
}

func NewProfileHandler(supabase *supa.Client, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		supabase: supabase,
		config:   cfg,
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var profiles []models.PhysicianProfile
	data, _, err := h.supabase.From("physician_profiles").
		Select("*", "", false).
		Eq("user_id", userID.(string)).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &profiles)
	}

	if err != nil || len(profiles) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    profiles[0],
	})
}

// CheckEligibility drives the Apply affordance on the browse screen. The
// same check runs again server-side on submission, so the two gates always
// agree.
func (h *ProfileHandler) CheckEligibility(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var profiles []models.PhysicianProfile
	data, _, err := h.supabase.From("physician_profiles").
		Select("*", "", false).
		Eq("user_id", userID.(string)).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &profiles)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch profile",
		})
		return
	}

	if len(profiles) == 0 {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Data: matching.EligibilityResult{
				Eligible:      false,
				MissingFields: []string{"Profile"},
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    matching.CheckProfileEligibility(&profiles[0]),
	})
}
