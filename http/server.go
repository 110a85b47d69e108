package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techspire/talenthub/log"
)

// GinServer mounts the kithttp handlers on a gin router. The route params are
// injected in the request context under the "params" key, where the request
// decoders expect them.
type GinServer struct {
	engine *gin.Engine
	logger log.Logger
}

func NewServer(logger log.Logger, env string) *GinServer {
	if env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, map[string]interface{}{
			"error": "page not found",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]interface{}{
			"data": "pong",
		})
	})

	return &GinServer{
		engine: engine,
		logger: logger,
	}
}

func (s *GinServer) RegisterHandler(path, method string, f http.Handler) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		f.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

func (s *GinServer) ListenAndServe(addr string) error {
	s.logger.Printf("server started, listening on %s", addr)
	return http.ListenAndServe(addr, s.engine)
}
