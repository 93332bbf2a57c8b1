package api

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/rs/zerolog"

	contractx "reviewdesk/agent/contract"
	routerx "reviewdesk/agent/router"
	logx "reviewdesk/pkg/logger"
)

type questionRequest struct {
	Question string `json:"question"`
}

type smartRequest struct {
	Prompt string `json:"prompt"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Handler exposes the two agents and the smart router over HTTP. Any error
// escaping an agent becomes a 500 with the error text in "detail".
type Handler struct {
	review contractx.Runner
	mail   contractx.Runner
	router *routerx.Router
	log    zerolog.Logger
}

func NewHandler(review, mail contractx.Runner, router *routerx.Router) *Handler {
	return &Handler{
		review: review,
		mail:   mail,
		router: router,
		log:    logx.Component("api"),
	}
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// Ask runs the review agent, unconditionally.
// POST /ask
func (h *Handler) Ask(c context.Context, ctx *app.RequestContext) {
	var req questionRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	answer, err := h.review.Run(c, req.Question)
	if err != nil {
		h.log.Error().Err(err).Msg("review agent failed")
		ctx.JSON(consts.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, answerResponse{Answer: answer})
}

// SendMail runs the mail agent, unconditionally. The request key stays
// "question" to match the ask endpoint's shape.
// POST /sendmail
func (h *Handler) SendMail(c context.Context, ctx *app.RequestContext) {
	var req questionRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	answer, err := h.mail.Run(c, req.Question)
	if err != nil {
		h.log.Error().Err(err).Msg("mail agent failed")
		ctx.JSON(consts.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, answerResponse{Answer: answer})
}

// Smart classifies the prompt and routes it to the matching agent. Unknown
// intents get a static apology without invoking either agent.
// POST /smart
func (h *Handler) Smart(c context.Context, ctx *app.RequestContext) {
	var req smartRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	result, err := h.router.Route(c, req.Prompt)
	if err != nil {
		h.log.Error().Err(err).Msg("smart routing failed")
		ctx.JSON(consts.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}
	ctx.JSON(consts.StatusOK, result)
}
