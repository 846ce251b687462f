package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/raweer420/CRMBUTECO/internal/worker"
)

// Health reports connectivity of the two stores the comanda flow depends on
// and the depth of the audit dead letter queue. A non-empty DLQ does not
// degrade the status; it is there so operators notice lost audit records.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbOK := true
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			dbOK = false
		}

		redisOK := rdb.Ping(ctx).Err() == nil

		var dlqDepth int64
		if redisOK {
			dlqDepth, _ = worker.AuditDLQLength(ctx, rdb)
		}

		status := http.StatusOK
		if !dbOK || !redisOK {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":        status == http.StatusOK,
			"db":        statusWord(dbOK),
			"redis":     statusWord(redisOK),
			"audit_dlq": dlqDepth,
		})
	}
}

func statusWord(ok bool) string {
	if ok {
		return "connected"
	}
	return "error"
}
