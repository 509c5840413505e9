package agent

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	"github.com/hellolead/hello-lead/internal/upstream"
)

func Register(rg *gin.RouterGroup, svc *agentsvc.Service) {
	rg.GET("", listAgents(svc))
	rg.PATCH("/:id", updateAgent(svc))
	rg.DELETE("/:id", deleteAgent(svc))
	rg.GET("/:id/calls", agentCallLogs(svc))
}

func listAgents(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		agents, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if agents == nil {
			agents = []voiceagent.Agent{}
		}
		c.JSON(http.StatusOK, agents)
	}
}

func updateAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd voiceagent.Update
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		agent, err := svc.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, agent)
	}
}

func deleteAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func agentCallLogs(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := svc.CallLogs(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		if logs == nil {
			logs = []voiceagent.CallLog{}
		}
		c.JSON(http.StatusOK, logs)
	}
}

func statusFor(err error) int {
	var se *upstream.StatusError
	var de *upstream.DecodeError
	if errors.As(err, &se) || errors.As(err, &de) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
