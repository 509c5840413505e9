package setup

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellolead/hello-lead/internal/domain/business"
	setupsvc "github.com/hellolead/hello-lead/internal/service/setup"
	"github.com/hellolead/hello-lead/internal/upstream"
)

// Register mounts the setup flow endpoints: script generation and
// agent launch.
func Register(rg *gin.RouterGroup, svc *setupsvc.Service) {
	rg.POST("/generate", generateScript(svc))
	rg.POST("/launch", launchAgent(svc))
}

func generateScript(svc *setupsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profile business.Profile
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		generated, err := svc.GenerateScript(c.Request.Context(), profile)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, generated)
	}
}

type launchReq struct {
	Profile business.Profile `json:"profile"`
	Prompt  string           `json:"prompt" binding:"required"`
	Name    string           `json:"name"`
}

func launchAgent(svc *setupsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req launchReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		agent, err := svc.LaunchAgent(c.Request.Context(), req.Profile, req.Prompt, req.Name)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, agent)
	}
}

// statusFor maps upstream failures to 502 and everything else (profile
// validation mostly) to 400.
func statusFor(err error) int {
	var se *upstream.StatusError
	var de *upstream.DecodeError
	if errors.As(err, &se) || errors.As(err, &de) {
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}
