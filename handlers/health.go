package handlers

import (
	"net/http"

	"tutorhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest storage health snapshot.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := monitor.Status()
		code := http.StatusOK
		status := "ok"
		if !st.Healthy {
			code = http.StatusServiceUnavailable
			status = "degraded"
		}
		c.JSON(code, gin.H{"status": status, "storage": st})
	}
}
