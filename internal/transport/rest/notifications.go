package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Notifications serves the notification feed routes.
type Notifications struct {
	browser notificationBrowser
}

// NewNotifications creates the notifications handler.
func NewNotifications(browser notificationBrowser) *Notifications {
	return &Notifications{browser: browser}
}

// NotificationResponse is the wire form of a feed entry. Optional fields
// are omitted for kinds that do not carry them.
type NotificationResponse struct {
	ID                 string    `json:"id"`
	Kind               string    `json:"kind"`
	EventID            uint64    `json:"event_id"`
	Actor              string    `json:"actor"`
	Amount             uint64    `json:"amount,omitempty"`
	MilestoneIndex     *int      `json:"milestone_index,omitempty"`
	MilestoneCompleted *bool     `json:"milestone_completed,omitempty"`
	Status             string    `json:"status,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toNotificationResponse(n domain.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:                 n.ID.String(),
		Kind:               n.Kind.String(),
		EventID:            n.EventID,
		Actor:              n.Actor,
		Amount:             n.Amount,
		MilestoneIndex:     n.MilestoneIndex,
		MilestoneCompleted: n.MilestoneCompleted,
		CreatedAt:          n.CreatedAt,
	}
	if n.Status != nil {
		resp.Status = n.Status.String()
	}
	return resp
}

// ByEvent handles GET /v1/events/:id/notifications.
func (h *Notifications) ByEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", defaultPageSize)

	entries, err := h.browser.ListByEvent(c.Request.Context(), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": toNotificationResponses(entries)})
}

// Recent handles GET /v1/notifications.
func (h *Notifications) Recent(c *gin.Context) {
	limit := queryInt(c, "limit", defaultPageSize)
	offset := queryInt(c, "offset", 0)

	entries, err := h.browser.ListRecent(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": toNotificationResponses(entries)})
}

func toNotificationResponses(entries []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(entries))
	for i, n := range entries {
		out[i] = toNotificationResponse(n)
	}
	return out
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	if name == "limit" && (v == 0 || v > maxPageSize) {
		return fallback
	}
	return v
}
