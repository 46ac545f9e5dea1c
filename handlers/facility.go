package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Shubh17ss/locumbnb-sub000/config"
	"github.com/Shubh17ss/locumbnb-sub000/matching"
	"github.com/Shubh17ss/locumbnb-sub000/models"
	"github.com/Shubh17ss/locumbnb-sub000/services"
	supa "github.com/supabase-community/supabase-go"
)

type FacilityHandler struct {
	supabase *supa.Client
	config   *config.Config
	notifier services.Notifier
}

func NewFacilityHandler(supabase *supa.Client, cfg *config.Config, notifier services.Notifier) *FacilityHandler {
	return &FacilityHandler{
		supabase: supabase,
		config:   cfg,
		notifier: notifier,
	}
}

// GetApplications lists applications for one of the facility's postings,
// with the lazy expiry transform applied so stale pendings surface as
// expired.
func (h *FacilityHandler) GetApplications(c *gin.Context) {
	postingID := c.Query("posting_id")
	facilityID, _ := c.Get("facility_id")

	if postingID == "" {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "posting_id is required",
		})
		return
	}

	posting, ok := h.ownedPosting(postingID, facilityID.(string))
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Job posting not found",
		})
		return
	}

	var apps []models.Application
	data, _, err := h.supabase.From("applications").
		Select("*", "", false).
		Eq("job_posting_id", posting.ID).
		Order("applied_at", nil).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &apps)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch applications",
		})
		return
	}

	apps = expireStale(h.supabase, h.notifier, apps, time.Now().UTC())

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    apps,
	})
}

// StartReview marks a pending application as under review.
func (h *FacilityHandler) StartReview(c *gin.Context) {
	applicationID := c.Param("id")
	facilityID, _ := c.Get("facility_id")
	now := time.Now().UTC()

	app, ok := h.ownedApplication(applicationID, facilityID.(string))
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Application not found",
		})
		return
	}

	fresh := expireStale(h.supabase, h.notifier, []models.Application{app}, now)

	reviewing, err := matching.StartReview(fresh[0], now)
	if err != nil {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   decisionError(err),
		})
		return
	}

	if _, _, err := h.supabase.From("applications").
		Update(map[string]interface{}{"status": reviewing.Status}, "", "").
		Eq("id", applicationID).
		Eq("status", models.ApplicationStatusPending).
		Execute(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to update application, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    reviewing,
	})
}

// DecideApplication records the facility's approve/reject. Stale decisions
// (past deadline or already terminal) are refused so a stale review screen
// can never overwrite reality.
func (h *FacilityHandler) DecideApplication(c *gin.Context) {
	applicationID := c.Param("id")
	facilityID, _ := c.Get("facility_id")

	var req models.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	now := time.Now().UTC()

	app, ok := h.ownedApplication(applicationID, facilityID.(string))
	if !ok {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Application not found",
		})
		return
	}

	fresh := expireStale(h.supabase, h.notifier, []models.Application{app}, now)

	decided, err := matching.ApplyFacilityDecision(fresh[0], req.Decision, req.Reason, now)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, matching.ErrReasonRequired) || errors.Is(err, matching.ErrInvalidDecision) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.Response{
			Success: false,
			Error:   decisionError(err),
		})
		return
	}

	updateData := map[string]interface{}{
		"status":               decided.Status,
		"facility_decision_at": decided.FacilityDecisionAt,
		"calendar_blocked":     decided.CalendarBlocked,
	}
	if decided.DecisionReason != nil {
		updateData["decision_reason"] = *decided.DecisionReason
	}

	var updated []models.Application
	data, _, err := h.supabase.From("applications").
		Update(updateData, "", "").
		Eq("id", applicationID).
		In("status", []string{models.ApplicationStatusPending, models.ApplicationStatusUnderReview}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &updated)
	}
	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "Application changed while deciding, please reload",
		})
		return
	}

	switch decided.Status {
	case models.ApplicationStatusApproved:
		// The hold converts into the assignment's reservation and the
		// posting stops accepting applications. Contract workflow is
		// downstream of the notification.
		if _, _, err := h.supabase.From("calendar_blocks").
			Update(map[string]interface{}{
				"reason":     models.BlockReasonApprovedAssignment,
				"expires_at": nil,
			}, "", "").
			Eq("application_id", applicationID).
			Eq("status", models.BlockStatusActive).
			Execute(); err != nil {
			fmt.Printf("[DecideApplication] Failed to convert block for %s: %v\n", applicationID, err)
		}

		if _, _, err := h.supabase.From("job_postings").
			Update(map[string]interface{}{"status": models.PostingStatusFilled}, "", "").
			Eq("id", decided.JobPostingID).
			Execute(); err != nil {
			fmt.Printf("[DecideApplication] Failed to mark posting %s filled: %v\n", decided.JobPostingID, err)
		}
	case models.ApplicationStatusRejected:
		if _, _, err := h.supabase.From("calendar_blocks").
			Update(map[string]interface{}{
				"status":      models.BlockStatusReleased,
				"released_at": now,
			}, "", "").
			Eq("application_id", applicationID).
			Eq("status", models.BlockStatusActive).
			Execute(); err != nil {
			fmt.Printf("[DecideApplication] Failed to release block for %s: %v\n", applicationID, err)
		}
	}

	detail := ""
	if decided.DecisionReason != nil {
		detail = *decided.DecisionReason
	}
	go h.notifier.Notify(services.Notification{
		Event:         services.EventFacilityDecision,
		ApplicationID: applicationID,
		JobPostingID:  decided.JobPostingID,
		PhysicianID:   decided.PhysicianID,
		FacilityID:    facilityID.(string),
		Detail:        detail,
		OccurredAt:    now,
	})

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Decision recorded",
		Data:    updated[0],
	})
}

// ownedApplication fetches an application and checks its posting belongs to
// the acting facility.
func (h *FacilityHandler) ownedApplication(applicationID, facilityID string) (models.Application, bool) {
	var apps []models.Application
	data, _, err := h.supabase.From("applications").
		Select("*", "", false).
		Eq("id", applicationID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &apps)
	}
	if err != nil || len(apps) == 0 {
		return models.Application{}, false
	}

	if _, ok := h.ownedPosting(apps[0].JobPostingID, facilityID); !ok {
		return models.Application{}, false
	}
	return apps[0], true
}

func (h *FacilityHandler) ownedPosting(postingID, facilityID string) (models.JobPosting, bool) {
	var postings []models.JobPosting
	data, _, err := h.supabase.From("job_postings").
		Select("*", "", false).
		Eq("id", postingID).
		Eq("facility_id", facilityID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &postings)
	}
	if err != nil || len(postings) == 0 {
		return models.JobPosting{}, false
	}
	return postings[0], true
}

func decisionError(err error) string {
	switch {
	case errors.Is(err, matching.ErrAlreadyDecided):
		return "This application has already reached a final status"
	case errors.Is(err, matching.ErrDeadlinePassed):
		return "The review deadline for this application has passed"
	case errors.Is(err, matching.ErrReasonRequired):
		return "A reason is required when rejecting an application"
	case errors.Is(err, matching.ErrInvalidDecision):
		return "Decision must be approve or reject"
	default:
		return "Unable to update this application"
	}
}
