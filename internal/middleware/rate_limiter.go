package middleware

import (
	"net/http"
	"sync"
	"time"

	"tempero/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// janela tracks request counts per IP within a sliding window.
type janela struct {
	count int
	fim   time.Time
	mu    sync.Mutex
}

// limiter is a per-IP sliding-window counter shared by all routes it guards.
type limiter struct {
	limite  int
	duracao time.Duration
	msg     string

	mu  sync.Mutex
	ips map[string]*janela
}

func newLimiter(limite int, duracao time.Duration, msg string) *limiter {
	l := &limiter{
		limite:  limite,
		duracao: duracao,
		msg:     msg,
		ips:     make(map[string]*janela),
	}
	go l.purge()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		j, ok := l.ips[ip]
		if !ok {
			j = &janela{}
			l.ips[ip] = j
		}
		l.mu.Unlock()

		j.mu.Lock()
		defer j.mu.Unlock()

		now := time.Now()
		if now.After(j.fim) {
			j.count = 0
			j.fim = now.Add(l.duracao)
		}

		j.count++
		if j.count > l.limite {
			c.Header("Retry-After", j.fim.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.msg))
			return
		}
		c.Next()
	}
}

// purge periodically removes expired windows so IPs that never return do not
// accumulate forever.
func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, j := range l.ips {
			j.mu.Lock()
			if now.After(j.fim) {
				delete(l.ips, ip)
				purged++
			}
			j.mu.Unlock()
		}
		remaining := len(l.ips)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter window purged")
		}
	}
}

// RateLimiter returns a general-purpose sliding-window limiter for the whole API.
func RateLimiter(limite int, duracao time.Duration) gin.HandlerFunc {
	return newLimiter(limite, duracao, "Muitas solicitações. Tente novamente em instantes.").handler()
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Muitas tentativas de login. Tente em 1 minuto.").handler()
}
