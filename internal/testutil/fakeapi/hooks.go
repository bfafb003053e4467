package fakeapi

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Respond answers with a fixed status and raw JSON body
func Respond(status int, body string) Hook {
	return func(c *gin.Context) bool {
		c.Data(status, "application/json", []byte(body))
		return true
	}
}

// Block waits until release is closed (or the request is cancelled), then runs next.
// A nil next falls through to the real handler.
func Block(release <-chan struct{}, next Hook) Hook {
	return func(c *gin.Context) bool {
		select {
		case <-release:
		case <-c.Request.Context().Done():
			return true
		}
		if next == nil {
			return false
		}
		return next(c)
	}
}

// Sequence runs hooks[n] for the nth call; calls past the end, and nil entries, fall through
func Sequence(hooks ...Hook) Hook {
	var mu sync.Mutex
	calls := 0
	return func(c *gin.Context) bool {
		mu.Lock()
		n := calls
		calls++
		mu.Unlock()
		if n >= len(hooks) || hooks[n] == nil {
			return false
		}
		return hooks[n](c)
	}
}
