package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/internal/service/funding"
)

// Events serves the crowdfunding event routes.
type Events struct {
	svc fundingService
}

// NewEvents creates the events handler.
func NewEvents(svc fundingService) *Events {
	return &Events{svc: svc}
}

// EventResponse is the wire form of an event snapshot.
type EventResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Creator     string    `json:"creator"`
	Status      string    `json:"status"`
	FundingGoal uint64    `json:"funding_goal"`
	TotalRaised uint64    `json:"total_raised"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventResponse(ev domain.Event) EventResponse {
	return EventResponse{
		ID:          ev.ID,
		Name:        ev.Name,
		Description: ev.Description,
		Creator:     ev.Creator,
		Status:      ev.Status.String(),
		FundingGoal: ev.FundingGoal,
		TotalRaised: ev.TotalRaised,
		Deadline:    ev.Deadline,
		CreatedAt:   ev.CreatedAt,
	}
}

// MilestoneResponse is the wire form of a milestone.
type MilestoneResponse struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Target    uint64 `json:"target"`
	Completed bool   `json:"completed"`
}

// Create handles POST /v1/events.
func (h *Events) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		FundingGoal  uint64 `json:"funding_goal"`
		DurationDays int    `json:"duration_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", err.Error()))
		return
	}

	id, err := h.svc.CreateEvent(c.Request.Context(), funding.CreateEventInput{
		Name:         req.Name,
		Description:  req.Description,
		FundingGoal:  req.FundingGoal,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List handles GET /v1/events.
func (h *Events) List(c *gin.Context) {
	events := h.svc.ListActiveEvents(c.Request.Context())
	out := make([]EventResponse, len(events))
	for i, ev := range events {
		out[i] = toEventResponse(ev)
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// Get handles GET /v1/events/:id.
func (h *Events) Get(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	ev, err := h.svc.GetEvent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponse(*ev))
}

// SetStatus handles PUT /v1/events/:id/status.
func (h *Events) SetStatus(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", err.Error()))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), id, domain.EventStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Payout handles POST /v1/events/:id/payout.
func (h *Events) Payout(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.svc.Payout(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Donate handles POST /v1/events/:id/donations.
func (h *Events) Donate(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req struct {
		Amount uint64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", err.Error()))
		return
	}

	if err := h.svc.Donate(c.Request.Context(), id, req.Amount); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Withdraw handles DELETE /v1/events/:id/donations. The caller's whole
// outstanding contribution is refunded; partial withdrawals do not exist.
func (h *Events) Withdraw(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.svc.Withdraw(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetContribution handles GET /v1/events/:id/contributions/:address.
func (h *Events) GetContribution(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	address := c.Param("address")
	amount := h.svc.GetContribution(c.Request.Context(), id, address)
	c.JSON(http.StatusOK, gin.H{
		"event_id":    id,
		"contributor": address,
		"amount":      amount,
	})
}

// ListMilestones handles GET /v1/events/:id/milestones. It answers for
// paid-out events too.
func (h *Events) ListMilestones(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	ms := h.svc.GetMilestones(c.Request.Context(), id)
	out := make([]MilestoneResponse, len(ms))
	for i, m := range ms {
		out[i] = MilestoneResponse{Index: i, Name: m.Name, Target: m.Target, Completed: m.Completed}
	}
	c.JSON(http.StatusOK, gin.H{"milestones": out})
}

// AddMilestone handles POST /v1/events/:id/milestones.
func (h *Events) AddMilestone(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req struct {
		Name   string `json:"name"`
		Target uint64 `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", err.Error()))
		return
	}

	err := h.svc.AddMilestone(c.Request.Context(), funding.AddMilestoneInput{
		EventID: id,
		Name:    req.Name,
		Target:  req.Target,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveMilestone handles DELETE /v1/events/:id/milestones/:index.
func (h *Events) RemoveMilestone(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", "index must be a non-negative integer"))
		return
	}

	if err := h.svc.RemoveMilestone(c.Request.Context(), id, index); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// eventID parses the :id path parameter. On failure it writes the error
// response and returns ok=false.
func eventID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", "id must be an unsigned integer"))
		return 0, false
	}
	return id, true
}
