package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Shubh17ss/locumbnb-sub000/config"
	"github.com/Shubh17ss/locumbnb-sub000/models"
	supa "github.com/supabase-community/supabase-go"
)

type PostingHandler struct {
	supabase *supa.Client
	config   *config.Config
}

func NewPostingHandler(supabase *supa.Client, cfg *config.Config) *PostingHandler {
	return &PostingHandler{
		supabase: supabase,
		config:   cfg,
	}
}

// GetJobPostings lists open postings for the browse screen. Only open
// postings are eligible for application.
func (h *PostingHandler) GetJobPostings(c *gin.Context) {
	specialty := c.Query("specialty")
	sort := c.Query("sort")

	orderColumn := "start_date"
	if sort == "pay" {
		orderColumn = "pay_amount"
	}

	query := h.supabase.From("job_postings").
		Select("*", "", false).
		Eq("status", models.PostingStatusOpen).
		Order(orderColumn, nil)

	if specialty != "" {
		query = query.Eq("specialty", specialty)
	}

	var postings []models.JobPosting
	data, _, err := query.Execute()
	if err == nil {
		err = json.Unmarshal(data, &postings)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch job postings",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    postings,
	})
}

func (h *PostingHandler) GetJobPostingByID(c *gin.Context) {
	postingID := c.Param("id")

	var postings []models.JobPosting
	data, _, err := h.supabase.From("job_postings").
		Select("*", "", false).
		Eq("id", postingID).
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

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    postings[0],
	})
}

// CreateJobPosting publishes a facility's assignment offer.
func (h *PostingHandler) CreateJobPosting(c *gin.Context) {
	facilityID, _ := c.Get("facility_id")
	facilityName, _ := c.Get("full_name")

	var req models.CreateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.StartDate >= req.EndDate {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Start date must be before end date",
		})
		return
	}

	if req.AssignmentType != models.AssignmentTypeFixedBlock && req.AssignmentType != models.AssignmentTypeRollingAvail {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid assignment type",
		})
		return
	}

	postingData := map[string]interface{}{
		"facility_id":          facilityID,
		"facility_name":        facilityName,
		"specialty":            req.Specialty,
		"subspecialty":         req.Subspecialty,
		"required_licenses":    req.RequiredLicenses,
		"start_date":           req.StartDate,
		"end_date":             req.EndDate,
		"assignment_type":      req.AssignmentType,
		"block_duration":       req.BlockDuration,
		"pay_amount":           req.PayAmount,
		"requirements":         req.Requirements,
		"malpractice_included": req.MalpracticeIncluded,
		"travel_included":      req.TravelIncluded,
		"lodging_included":     req.LodgingIncluded,
		"travel_budget_cap":    req.TravelBudgetCap,
		"lodging_budget_cap":   req.LodgingBudgetCap,
		"status":               models.PostingStatusOpen,
	}

	var created []models.JobPosting
	data, _, err := h.supabase.From("job_postings").
		Insert(postingData, false, "", "", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}

	if err != nil || len(created) == 0 {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to create job posting",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Job posting created",
		Data:    created[0],
	})
}

// UpdatePostingStatus lets a facility close or cancel its own posting.
func (h *PostingHandler) UpdatePostingStatus(c *gin.Context) {
	postingID := c.Param("id")
	facilityID, _ := c.Get("facility_id")

	var req models.UpdatePostingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	switch req.Status {
	case models.PostingStatusOpen, models.PostingStatusFilled, models.PostingStatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid posting status",
		})
		return
	}

	var updated []models.JobPosting
	data, _, err := h.supabase.From("job_postings").
		Update(map[string]interface{}{"status": req.Status}, "", "").
		Eq("id", postingID).
		Eq("facility_id", facilityID.(string)).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &updated)
	}

	if err != nil || len(updated) == 0 {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Job posting not found or update failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Job posting updated",
		Data:    updated[0],
	})
}
