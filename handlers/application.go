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

type ApplicationHandler struct {
	supabase *supa.Client
	config   *config.Config
	locks    *physicianLocks
	ipLookup services.IPLookup
	notifier services.Notifier
}

func NewApplicationHandler(supabase *supa.Client, cfg *config.Config, ipLookup services.IPLookup, notifier services.Notifier) *ApplicationHandler {
	return &ApplicationHandler{
		supabase: supabase,
		config:   cfg,
		locks:    newPhysicianLocks(),
		ipLookup: ipLookup,
		notifier: notifier,
	}
}

// GetMyApplications lists the physician's applications. Stale pending rows
// are expired on the way out, so the caller never sees a pending status past
// its deadline.
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, _ := c.Get("user_id")
	status := c.Query("status")

	query := h.supabase.From("applications").
		Select("*", "", false).
		Eq("physician_id", userID.(string)).
		Order("applied_at", nil)

	if status != "" {
		query = query.Eq("status", status)
	}

	var apps []models.Application
	data, _, err := query.Execute()
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

// GetMyCalendarBlocks returns the physician's calendar reservations,
// optionally filtered by status.
func (h *ApplicationHandler) GetMyCalendarBlocks(c *gin.Context) {
	userID, _ := c.Get("user_id")
	status := c.Query("status")

	query := h.supabase.From("calendar_blocks").
		Select("*", "", false).
		Eq("physician_id", userID.(string)).
		Order("start_date", nil)

	if status != "" {
		query = query.Eq("status", status)
	}

	var blocks []models.CalendarBlock
	data, _, err := query.Execute()
	if err == nil {
		err = json.Unmarshal(data, &blocks)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch calendar blocks",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    blocks,
	})
}

// SubmitApplication runs the full apply pre-flight and writes the
// Application + CalendarBlock pair. The per-physician lock is held across
// the overlap check and both writes so concurrent submissions cannot
// double-book.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	userID, _ := c.Get("user_id")
	physicianID, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Invalid user context",
		})
		return
	}

	var req models.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	fmt.Printf("[SubmitApplication] Physician %s applying to posting %s\n", physicianID, req.JobPostingID)

	unlock := h.locks.Acquire(physicianID)
	defer unlock()

	now := time.Now().UTC()

	// Posting
	var postings []models.JobPosting
	data, _, err := h.supabase.From("job_postings").
		Select("*", "", false).
		Eq("id", req.JobPostingID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &postings)
	}
	if err != nil || len(postings) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Job posting not found",
		})
		return
	}
	posting := postings[0]

	// Profile
	var profiles []models.PhysicianProfile
	data, _, err = h.supabase.From("physician_profiles").
		Select("*", "", false).
		Eq("user_id", physicianID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &profiles)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch profile, please try again",
		})
		return
	}
	if len(profiles) == 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Complete your profile before applying",
		})
		return
	}
	profile := profiles[0]

	// Current applications and active blocks; stale pendings are expired
	// first so they cannot block fresh dates.
	var apps []models.Application
	data, _, err = h.supabase.From("applications").
		Select("*", "", false).
		Eq("physician_id", physicianID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &apps)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch applications, please try again",
		})
		return
	}
	apps = expireStale(h.supabase, h.notifier, apps, now)

	var blocks []models.CalendarBlock
	data, _, err = h.supabase.From("calendar_blocks").
		Select("*", "", false).
		Eq("physician_id", physicianID).
		Eq("status", models.BlockStatusActive).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &blocks)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch calendar blocks, please try again",
		})
		return
	}

	// Best-effort audit context; never blocks submission.
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = h.ipLookup.LookupIP()
	}
	env := matching.SubmissionEnv{
		ClientIP:        clientIP,
		DeviceSignature: c.GetHeader("User-Agent"),
	}

	app, block, rejection := matching.PrepareSubmission(&posting, &profile, apps, blocks, env, now, h.config.ReviewWindowHours)
	if rejection != nil {
		status := http.StatusBadRequest
		if rejection.Reason == matching.RejectDateConflict {
			status = http.StatusConflict
		}
		c.JSON(status, models.Response{
			Success: false,
			Error:   rejection.Message,
			Data:    rejection,
		})
		return
	}

	// Dual write with compensating delete: the pair persists together or
	// not at all.
	appData := map[string]interface{}{
		"id":                  app.ID,
		"job_posting_id":      app.JobPostingID,
		"physician_id":        app.PhysicianID,
		"physician_name":      app.PhysicianName,
		"physician_specialty": app.PhysicianSpecialty,
		"status":              app.Status,
		"applied_at":          app.AppliedAt,
		"review_deadline":     app.ReviewDeadline,
		"calendar_blocked":    app.CalendarBlocked,
		"blocked_dates":       app.BlockedDates,
		"profile_snapshot":    app.ProfileSnapshot,
	}

	if _, _, err := h.supabase.From("applications").
		Insert(appData, false, "", "", "").
		Execute(); err != nil {
		fmt.Printf("[SubmitApplication] Application insert failed: %v\n", err)
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to submit application, please try again",
		})
		return
	}

	blockData := map[string]interface{}{
		"id":             block.ID,
		"physician_id":   block.PhysicianID,
		"application_id": block.ApplicationID,
		"job_posting_id": block.JobPostingID,
		"start_date":     block.StartDate,
		"end_date":       block.EndDate,
		"status":         block.Status,
		"reason":         block.Reason,
		"expires_at":     block.ExpiresAt,
	}

	if _, _, err := h.supabase.From("calendar_blocks").
		Insert(blockData, false, "", "", "").
		Execute(); err != nil {
		fmt.Printf("[SubmitApplication] Block insert failed, rolling back application %s\n", app.ID)
		h.supabase.From("applications").Delete("", "").Eq("id", app.ID).Execute()
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to submit application, please try again",
		})
		return
	}

	go h.notifier.Notify(services.Notification{
		Event:         services.EventApplicationSubmitted,
		ApplicationID: app.ID,
		JobPostingID:  posting.ID,
		PhysicianID:   physicianID,
		FacilityID:    posting.FacilityID,
		OccurredAt:    now,
	})

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Application submitted successfully",
		Data: gin.H{
			"application":    app,
			"calendar_block": block,
		},
	})
}

// WithdrawApplication is physician-initiated; only a still-pending
// application can be withdrawn.
func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	applicationID := c.Param("id")
	userID, _ := c.Get("user_id")
	physicianID, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Invalid user context",
		})
		return
	}

	unlock := h.locks.Acquire(physicianID)
	defer unlock()

	now := time.Now().UTC()

	var apps []models.Application
	data, _, err := h.supabase.From("applications").
		Select("*", "", false).
		Eq("id", applicationID).
		Eq("physician_id", physicianID).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &apps)
	}
	if err != nil || len(apps) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Application not found",
		})
		return
	}

	apps = expireStale(h.supabase, h.notifier, apps, now)

	withdrawn, err := matching.WithdrawApplication(apps[0], now)
	if err != nil {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   withdrawError(err),
		})
		return
	}

	if _, _, err := h.supabase.From("applications").
		Update(map[string]interface{}{
			"status":           withdrawn.Status,
			"calendar_blocked": false,
		}, "", "").
		Eq("id", applicationID).
		Eq("status", models.ApplicationStatusPending).
		Execute(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to withdraw application, please try again",
		})
		return
	}

	if _, _, err := h.supabase.From("calendar_blocks").
		Update(map[string]interface{}{
			"status":      models.BlockStatusReleased,
			"released_at": now,
		}, "", "").
		Eq("application_id", applicationID).
		Eq("status", models.BlockStatusActive).
		Execute(); err != nil {
		fmt.Printf("[WithdrawApplication] Failed to release block for %s: %v\n", applicationID, err)
	}

	go h.notifier.Notify(services.Notification{
		Event:         services.EventApplicationWithdrawn,
		ApplicationID: applicationID,
		JobPostingID:  withdrawn.JobPostingID,
		PhysicianID:   physicianID,
		OccurredAt:    now,
	})

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Application withdrawn",
		Data:    withdrawn,
	})
}

func withdrawError(err error) string {
	switch {
	case errors.Is(err, matching.ErrAlreadyDecided):
		return "This application has already been decided and can no longer be withdrawn"
	case errors.Is(err, matching.ErrDeadlinePassed):
		return "The review window for this application has already closed"
	default:
		return "This application is no longer pending"
	}
}
