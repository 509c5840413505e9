package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hellolead/hello-lead/internal/adapter/memory"
	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	"github.com/hellolead/hello-lead/internal/upstream"
)

func Register(rg *gin.RouterGroup, svc *leadsvc.Service) {
	rg.GET("", listLeads(svc))
	rg.GET("/:id", getLead(svc))
	rg.PATCH("/:id/status", updateStatus(svc))
	rg.POST("/:id/follow-ups", followUps(svc))
}

func listLeads(svc *leadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainlead.ListFilters
		if v := c.Query("status"); v != "" {
			s := domainlead.Status(v)
			if !s.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			filters.Status = &s
		}
		filters.Search = c.Query("q")

		leads, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if leads == nil {
			leads = []domainlead.Lead{}
		}
		c.JSON(http.StatusOK, leads)
	}
}

func getLead(svc *leadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		l, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, l)
	}
}

type updateStatusReq struct {
	Status domainlead.Status `json:"status" binding:"required"`
}

func updateStatus(svc *leadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req updateStatusReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		l, err := svc.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, l)
	}
}

func followUps(svc *leadsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		questions, err := svc.FollowUpQuestions(c.Request.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, memory.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case isUpstream(err):
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		if questions == nil {
			questions = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"questions": questions})
	}
}

func isUpstream(err error) bool {
	var se *upstream.StatusError
	var de *upstream.DecodeError
	return errors.As(err, &se) || errors.As(err, &de)
}
