package handlers

import (
	"net/http"
	"strconv"
	"time"

	cm "condition_monitor"
	"condition_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterDeviceRequest is the payload for registering a device.
type RegisterDeviceRequest struct {
	UUID     string `json:"device_uuid" binding:"required" example:"0694e4d7-dfce-4aec-b7ca-887ac42cfb8f"`
	Name     string `json:"name" binding:"required" example:"living room chair"`
	Category string `json:"category" binding:"required" example:"sofa"`
}

// @Summary      List my devices
// @Tags         devices
// @Produce      json
// @Success      200  {array}   condition_monitor.DeviceResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	summaries, err := h.services.ListDevices(c.Request.Context(), userID(c))
	if err != nil {
		h.respondServiceError(c, "devices_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, cm.NewDeviceResponses(summaries))
}

// @Summary      Register a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterDeviceRequest  true  "device"
// @Success      201   {object}  models.Device
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/devices [post]
// @Security     BearerAuth
func (h *Handler) registerDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if ok := h.bindJSONOrBadRequest(c, &req, "device_bad_request_body"); !ok {
		return
	}

	d, err := h.services.RegisterDevice(c.Request.Context(), userID(c), service.DeviceInput{
		UUID:     req.UUID,
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.respondServiceError(c, "device_register_failed", err, "device_uuid", req.UUID)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// @Summary      Get a device
// @Tags         devices
// @Produce      json
// @Param        uuid  path      string  true  "device uuid"
// @Success      200   {object}  models.Device
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/devices/{uuid} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	d, err := h.services.GetDevice(c.Request.Context(), userID(c), c.Param("uuid"))
	if err != nil {
		h.respondServiceError(c, "device_get_failed", err, "device_uuid", c.Param("uuid"))
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Hourly graph of a device
// @Description  24 one-hour buckets starting at the hour containing datetime.
// @Tags         devices
// @Produce      json
// @Param        uuid      path      string  true  "device uuid"
// @Param        datetime  query     int     true  "unix seconds"
// @Success      200       {array}   condition_monitor.GraphResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/v1/devices/{uuid}/graph [get]
// @Security     BearerAuth
func (h *Handler) getGraph(c *gin.Context) {
	dt, err := strconv.ParseInt(c.Query("datetime"), 10, 64)
	if err != nil {
		h.logAndJSONError(c, http.StatusBadRequest, "bad format: datetime", "graph_bad_datetime", err)
		return
	}

	buckets, err := h.services.DeviceGraph(c.Request.Context(), userID(c), c.Param("uuid"), time.Unix(dt, 0))
	if err != nil {
		h.respondServiceError(c, "graph_failed", err, "device_uuid", c.Param("uuid"))
		return
	}
	c.JSON(http.StatusOK, cm.NewGraphResponses(buckets))
}
