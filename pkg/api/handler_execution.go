package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apa-platform/apacore/pkg/database"
)

// cancelExecutionHandler requests cancellation of a pending or running
// execution. The status flip is the durable signal; the local context cancel
// only accelerates runs owned by this pod.
func (s *Server) cancelExecutionHandler(c *gin.Context) {
	executionID := c.Param("id")

	if err := s.executions.Cancel(c.Request.Context(), executionID); err != nil {
		serviceError(c, err)
		return
	}

	cancelledLocally := false
	if s.pool != nil {
		cancelledLocally = s.pool.CancelRun(executionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"execution_id":      executionID,
		"status":            "cancellation_requested",
		"cancelled_locally": cancelledLocally,
	})
}

// healthHandler reports database and worker pool health. Unhealthy states
// return 503 so load balancers can rotate the pod out.
func (s *Server) healthHandler(c *gin.Context) {
	dbStatus, dbErr := database.Health(c.Request.Context(), s.db.DB())

	body := gin.H{
		"pod_id":   s.podID,
		"database": dbStatus,
	}

	healthy := dbErr == nil
	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["worker_pool"] = poolHealth
		healthy = healthy && poolHealth.IsHealthy
	}

	if healthy {
		body["status"] = "healthy"
		c.JSON(http.StatusOK, body)
		return
	}
	body["status"] = "unhealthy"
	c.JSON(http.StatusServiceUnavailable, body)
}
