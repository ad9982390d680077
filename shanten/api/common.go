package api

import (
	"time"

	"github.com/Apricot-S/shanten-algorithm-collection/common/http"
)

// PingHandler ping 检查
func PingHandler(c *http.Context) error {
	c.Success(map[string]interface{}{
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"service":   "shanten",
	})
	return nil
}
