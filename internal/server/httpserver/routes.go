package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

const (
	graphPath   = "/graph"
	healthPath  = "/health"
	pingTimeout = 2 * time.Second
)

func newRouter(schema graphql.Schema, graphiql bool, db Pinger, l logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(l), gin.Recovery(), bearerToken())

	router.GET(healthPath, health(db))

	gql := gin.WrapH(handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
	}))
	router.GET(graphPath, gql)
	router.POST(graphPath, gql)

	return router
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
