package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// hitlPendingHandler lists pending approval requests for operators.
func (s *Server) hitlPendingHandler(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	riskLevel := c.Query("risk_level")

	rows, err := s.hitl.PendingRequests(c.Request.Context(), limit, riskLevel)
	if err != nil {
		serviceError(c, err)
		return
	}

	requests := make([]hitlEntry, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, toHITLEntry(row))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(requests),
		"requests": requests,
	})
}

// hitlRespondHandler records an operator decision on a pending request.
// "approve" approves; anything else rejects. The waiting run observes the
// status flip on its next poll.
func (s *Server) hitlRespondHandler(c *gin.Context) {
	requestID := c.Param("id")

	var req hitlRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	respondedBy := req.RespondBy
	if respondedBy == "" {
		respondedBy = "operator"
	}

	row, err := s.hitl.Respond(c.Request.Context(), requestID, respondedBy, req.Decision, req.Feedback)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toHITLEntry(row))
}

// hitlStatsHandler returns approval-queue counters by status and risk level.
func (s *Server) hitlStatsHandler(c *gin.Context) {
	stats, err := s.hitl.GetStats(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
