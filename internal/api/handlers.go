package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"checkconnect/internal/checker"
	"checkconnect/internal/configuration"
	"checkconnect/internal/models"
)

// RunChecksHandler probes every configured target and returns the result
// sequence. Probes run one after another, so the response can take up to
// targets x timeout to arrive.
func (s *Server) RunChecksHandler(c *gin.Context) {
	results := checker.New(s.cfg).Run(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"summary": models.Summarize(results),
		"results": results,
	})
}

func (s *Server) GetConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.cfg)
}

// UpdateConfigHandler validates and writes a new configuration file. The new
// targets take effect on restart.
func (s *Server) UpdateConfigHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read request body", "error": err.Error()})
		return
	}

	if err := configuration.Update(s.configPath, body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update configuration", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Configuration updated successfully. Please restart the application to apply changes."})
}

func (s *Server) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "checkconnect",
	})
}
