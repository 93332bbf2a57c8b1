package api

import (
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Router assembles the hertz server around a Handler.
type Router struct {
	handler *Handler
}

func NewRouter(h *Handler) *Router {
	return &Router{handler: h}
}

// Build wires routes onto a hertz server listening on addr.
func (r *Router) Build(addr string) *server.Hertz {
	h := server.Default(server.WithHostPorts(addr))

	h.GET("/healthz", r.handler.Health)
	h.POST("/ask", r.handler.Ask)
	h.POST("/sendmail", r.handler.SendMail)
	h.POST("/smart", r.handler.Smart)

	return h
}
