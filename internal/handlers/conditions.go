package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	cm "condition_monitor"
	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
	"condition_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// PostConditionRequest is one report in a device's batch.
type PostConditionRequest struct {
	IsSitting bool   `json:"is_sitting"`
	Condition string `json:"condition" example:"is_dirty=true,is_overweight=false,is_broken=false"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp" example:"1627776000"`
}

// @Summary      List device conditions
// @Description  Newest first, end_time exclusive, start_time inclusive.
// @Tags         conditions
// @Produce      json
// @Param        uuid             path      string  true   "device uuid"
// @Param        end_time         query     int     true   "unix seconds"
// @Param        condition_level  query     string  true   "comma separated: info,warning,critical"
// @Param        start_time       query     int     false  "unix seconds"
// @Param        limit            query     int     false  "max results"
// @Success      200              {array}   condition_monitor.ConditionResponse
// @Failure      400              {object}  map[string]string
// @Failure      404              {object}  map[string]string
// @Router       /api/v1/conditions/{uuid} [get]
// @Security     BearerAuth
func (h *Handler) getConditions(c *gin.Context) {
	q, err := parseConditionQuery(c)
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, err.Error(), "conditions_bad_query", err)
		return
	}

	summaries, err := h.services.ListConditions(c.Request.Context(), userID(c), c.Param("uuid"), q)
	if err != nil {
		h.respondServiceError(c, "conditions_list_failed", err, "device_uuid", c.Param("uuid"))
		return
	}
	c.JSON(http.StatusOK, cm.NewConditionResponses(summaries))
}

func parseConditionQuery(c *gin.Context) (service.ConditionQuery, error) {
	var q service.ConditionQuery

	end, err := strconv.ParseInt(c.Query("end_time"), 10, 64)
	if err != nil {
		return q, errors.New("bad format: end_time")
	}
	q.EndTime = time.Unix(end, 0)

	levels := c.Query("condition_level")
	if levels == "" {
		return q, errors.New("missing: condition_level")
	}
	if q.Levels, err = condition.ParseLevelSet(levels); err != nil {
		return q, errors.New("bad format: condition_level")
	}

	if s := c.Query("start_time"); s != "" {
		start, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return q, errors.New("bad format: start_time")
		}
		q.StartTime = time.Unix(start, 0)
	}

	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit <= 0 {
			return q, errors.New("bad format: limit")
		}
		q.Limit = limit
	}
	return q, nil
}

// @Summary      Post a batch of conditions
// @Description  Accepted batches are stored atomically; one malformed condition rejects the batch.
// @Tags         conditions
// @Accept       json
// @Param        uuid  path      string                  true  "device uuid"
// @Param        body  body      []PostConditionRequest  true  "conditions"
// @Success      202
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/condition/{uuid} [post]
func (h *Handler) postConditions(c *gin.Context) {
	var req []PostConditionRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "conditions_bad_request_body"); !ok {
		return
	}

	batch := make([]models.ConditionRecord, len(req))
	for i, r := range req {
		batch[i] = models.ConditionRecord{
			Timestamp: time.Unix(r.Timestamp, 0),
			IsSitting: r.IsSitting,
			Raw:       r.Condition,
			Message:   r.Message,
		}
	}

	deviceUUID := c.Param("uuid")
	err := h.services.PostConditions(c.Request.Context(), deviceUUID, batch)
	switch {
	case err == nil:
		c.Status(http.StatusAccepted)
	case errors.Is(err, service.ErrDropped):
		h.log.Warnw("conditions_dropped", "request_id", c.GetString(ctxRequestID), "device_uuid", deviceUUID, "count", len(batch))
		c.Status(http.StatusAccepted)
	default:
		h.respondServiceError(c, "conditions_post_failed", err, "device_uuid", deviceUUID)
	}
}
