package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	domain "github.com/itzlabs/clientdesk/internal/domain/agent"
	"github.com/itzlabs/clientdesk/internal/httperr"
	"github.com/itzlabs/clientdesk/internal/httpresp"
)

type AgentHandler struct {
	agents domain.Directory
	log    *slog.Logger
}

func NewAgentHandler(agents domain.Directory, log *slog.Logger) *AgentHandler {
	return &AgentHandler{agents: agents, log: log}
}

// List feeds the assignment dropdown.
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agents.List(c.Request.Context())
	if err != nil {
		httperr.From(c, h.log, err)
		return
	}

	httpresp.List(c, agents)
}
