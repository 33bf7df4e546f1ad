package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. An absent or empty message is
// not a binding error here; the use case reports it as a domain error so the
// client gets a stable error shape.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
