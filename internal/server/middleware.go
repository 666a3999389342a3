package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ipHasher hashes client addresses with a per-process salt so request logs
// never carry raw IPs.
type ipHasher struct {
	salt string
}

func newIPHasher() ipHasher {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("server: read random salt: " + err.Error())
	}
	return ipHasher{salt: hex.EncodeToString(b)}
}

func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// visitorLogger logs one line per page request. Asset requests are skipped
// and visitors sending DNT: 1 are logged without a client hash.
func visitorLogger(log zerolog.Logger, h ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if isAsset(path) {
			return
		}
		ev := log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start))
		if c.GetHeader("DNT") != "1" {
			ev = ev.Str("client", h.hash(c.ClientIP()))
		}
		ev.Msg("request")
	}
}

func isAsset(path string) bool {
	for _, ext := range []string{".css", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp"} {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return strings.HasPrefix(path, "/favicon")
}
