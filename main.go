package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/appsupport/ai-assistant-backend/internal/assistant"
	"github.com/appsupport/ai-assistant-backend/internal/config"
	"github.com/appsupport/ai-assistant-backend/internal/docs"
	"github.com/appsupport/ai-assistant-backend/internal/provider"
)

// corsMiddleware lets browser frontends on any origin call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func newRouter(bot *assistant.Assistant, chat provider.ChatProvider) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uptime": time.Now().Format(time.RFC3339)})
	})

	r.GET("/api/model", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"model": chat.Model()})
	})

	r.POST("/ai-assistant", func(c *gin.Context) {
		var req assistant.Request
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, assistant.ErrorResponse{Error: "invalid JSON body"})
			return
		}

		res := bot.Answer(c.Request.Context(), req)
		if !res.OK {
			if res.Status == http.StatusInternalServerError {
				log.Error("ai-assistant", "err", res.Err)
			}
			c.JSON(res.Status, assistant.ErrorResponse{Error: res.Err})
			return
		}
		c.JSON(http.StatusOK, assistant.SuccessResponse{
			Success:    true,
			Answer:     res.Answer,
			ModelUsed:  res.Model,
			TokensUsed: res.TokensUsed,
		})
	})

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration", "err", err)
	}

	// Loaded once; every request reads the same immutable corpus.
	corpus := docs.Load(cfg.DocPath)
	if corpus == "" {
		log.Warn("documentation corpus is empty; requests will fail until it is fixed", "path", cfg.DocPath)
	}

	chat, err := provider.NewGroq(cfg.GroqAPIKey, cfg.Model, cfg.GroqURL)
	if err != nil {
		log.Fatal("provider", "err", err)
	}

	bot := assistant.New(corpus, chat)

	r := newRouter(bot, chat)
	log.Info("listening", "port", cfg.Port, "model", chat.Model())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server", "err", err)
	}
}
