package http

import (
	"github.com/gin-gonic/gin"

	"quick-event/pkg/response"
)

// Parse godoc
// @Summary     Parse a quick-add query
// @Description Resolves a natural-language query into a structured event plus a pre-filled calendar URL.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Query to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Preview godoc
// @Summary     Preview a quick-add query
// @Description Same resolution as parse, driven by query parameters so as-you-type front-ends can call it.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       q       query string true  "Query to parse"
// @Param       profile query string false "Calendar profile (personal/work/other)"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/preview [GET]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Create godoc
// @Summary     Create an event
// @Description Parses the query and inserts the resolved event through the Calendar API.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Query to parse and create"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Calendar API not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}
