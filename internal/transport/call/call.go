package call

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	"github.com/hellolead/hello-lead/internal/upstream"
)

// Register mounts the platform-wide call log and transcript
// summarisation.
func Register(rg *gin.RouterGroup, agentSvc *agentsvc.Service, leadSvc *leadsvc.Service) {
	rg.GET("", listCalls(agentSvc))
	rg.POST("/summary", summarize(leadSvc))
}

func listCalls(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := svc.CallLogs(c.Request.Context(), "")
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

type summarizeReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

func summarize(svc *leadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req summarizeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		summary, err := svc.SummarizeCall(c.Request.Context(), req.Transcript)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary})
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
