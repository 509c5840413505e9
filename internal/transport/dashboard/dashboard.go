package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardsvc "github.com/hellolead/hello-lead/internal/service/dashboard"
)

func Register(rg *gin.RouterGroup, svc *dashboardsvc.Service) {
	rg.GET("", overview(svc))
}

func overview(svc *dashboardsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Overview(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
