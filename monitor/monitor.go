package monitor

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"grantee-portal-api/config"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterMonitorPage serves a small operational status page.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Grantee Portal Monitor</title>
  <style>
    body { background: #0f0f0f; color: #e0e0e0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; padding: 40px; }
    h1 { font-size: 1.6rem; margin-bottom: 1.5rem; }
    .card { background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); border-radius: 12px; padding: 1.2rem; margin-bottom: 1rem; max-width: 640px; }
    .label { color: #888; font-size: 0.85rem; }
    .value { font-size: 1.1rem; margin-top: 0.2rem; }
  </style>
</head>
<body>
  <h1>Grantee Portal API</h1>
  <div class="card"><div class="label">Status</div><div class="value" id="status">checking…</div></div>
  <div class="card"><div class="label">Uptime</div><div class="value" id="uptime">–</div></div>
  <script>
    fetch('/monitor/status').then(r => r.json()).then(d => {
      document.getElementById('status').textContent = d.status;
      document.getElementById('uptime').textContent = d.uptime;
    }).catch(() => { document.getElementById('status').textContent = 'unreachable'; });
  </script>
</body>
</html>`))
	})

	router.GET("/monitor/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"uptime":     time.Since(startedAt).Round(time.Second).String(),
			"goroutines": runtime.NumGoroutine(),
			"go_version": runtime.Version(),
		})
	})
}

// RegisterLogsRoute exposes the backend log file behind a shared token.
func RegisterLogsRoute(router *gin.Engine) {
	router.GET("/logs", func(c *gin.Context) {
		accessToken := os.Getenv("LOGS_ACCESS_TOKEN")
		if accessToken == "" || c.Query("token") != accessToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to read log"})
			return
		}

		c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
	})
}
