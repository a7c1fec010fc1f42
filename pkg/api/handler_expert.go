package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listExpertsHandler handles GET /api/experts.
// Admin-only inventory of registered experts and their capabilities.
func (s *Server) listExpertsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &ExpertsResponse{
		Experts: s.dispatcher.Descriptors(),
	})
}

// probeExpertHandler handles POST /api/experts/:name/probe.
// Scores a query against one expert without executing anything.
func (s *Server) probeExpertHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return invalidRequest(c, "expert name is required")
	}

	var req ProbeRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest(c, err.Error())
	}
	if req.Query == "" {
		return invalidRequest(c, "query is required")
	}

	result, err := s.dispatcher.Probe(name, req.Query)
	if err != nil {
		return renderFault(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
