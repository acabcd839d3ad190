package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/VexyyCat/ChromaBags/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity plus the depth of the async job
// queues (quotation PDFs and outgoing email). Never exposes credentials.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		colas := gin.H{}
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		} else {
			for nombre, key := range map[string]string{
				"cotizaciones": worker.QueueCotizacion,
				"emails":       worker.QueueEmail,
			} {
				n, err := rdb.LLen(ctx, key).Result()
				if err != nil {
					redisStatus = "error"
					break
				}
				colas[nombre] = n
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":            status == http.StatusOK,
			"db":            dbStatus,
			"redis":         redisStatus,
			"colas_trabajo": colas,
		})
	}
}
