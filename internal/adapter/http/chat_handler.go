package http

import (
	"net/http"
	"strings"

	"investiq/internal/usecase/chat"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct{ uc *chat.Usecase }

func NewChatHandler(uc *chat.Usecase) *ChatHandler { return &ChatHandler{uc: uc} }

type chatReq struct {
	Question string `json:"question"`
}

type chatResp struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid body"})
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		// the original frontend sends the question as a query param
		question = strings.TrimSpace(c.QueryParam("message"))
	}
	if question == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "question is required"})
	}

	answer, err := h.uc.Ask(c.Request().Context(), question)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Chat error: " + err.Error()})
	}
	return c.JSON(http.StatusOK, chatResp{
		Question: question,
		Answer:   answer,
		Status:   "success",
	})
}
