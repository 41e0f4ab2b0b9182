package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mggonzales/discord-bot/bot"
	"github.com/mggonzales/discord-bot/logger"
)

// Start runs the liveness HTTP listener hosting platforms probe for. It
// blocks; run it in its own goroutine.
func Start(port int, debug bool) error {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	startedAt := time.Now()

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		botTag := "Starting..."
		guilds := 0
		if s := bot.GetSession(); s != nil && s.State != nil {
			if s.State.User != nil {
				botTag = s.State.User.String()
			}
			guilds = len(s.State.Guilds)
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "online",
			"bot":    botTag,
			"guilds": guilds,
			"uptime": time.Since(startedAt).Seconds(),
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("web server listening")
	return router.Run(addr)
}
