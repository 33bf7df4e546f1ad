package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-chatbot/internal/chat"
)

// Chat godoc
// @Summary     Answer a customer message
// @Description Routes a customer message through the storefront assistant and returns the rendered HTML reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Customer message"
// @Success     200 {object} chatResp
// @Failure     400 {object} errResp "Bad Request - missing message"
// @Failure     429 {object} errResp "Too Many Requests"
// @Failure     500 {object} errResp "Internal Server Error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errResp{Error: "invalid request body"})
		return
	}

	output, err := h.uc.Answer(ctx, req.toScope(), req.toInput())
	if err != nil {
		if err == chat.ErrEmptyMessage {
			c.JSON(http.StatusBadRequest, errResp{Error: chat.ErrEmptyMessage.Error()})
			return
		}
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		c.JSON(http.StatusInternalServerError, errResp{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}
