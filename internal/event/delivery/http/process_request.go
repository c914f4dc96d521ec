package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPreviewReq binds and validates the preview query parameters.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
