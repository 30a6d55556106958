package api

import (
	"io"

	"github.com/gin-gonic/gin"
)

// streamEvents pushes a "state" server-sent event for every snapshot. Slow
// clients only see the latest snapshot.
func (s *Server) streamEvents(c *gin.Context) {
	ctx := c.Request.Context()
	updates := s.store.Watch(ctx)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case st, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", newStateResponse(st))
			return true
		case <-s.base.Done():
			return false
		case <-ctx.Done():
			return false
		}
	})
}
