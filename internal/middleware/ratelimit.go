package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limitador best-effort por processo: contadores em memória, zerados no
// restart. Soft por contrato — durabilidade não é requisito aqui.

type rateEntry struct {
	count   int
	resetAt time.Time
}

type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]rateEntry
	max         int
	window      time.Duration
	lastCleanup time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]rateEntry),
		max:     max,
		window:  window,
	}
}

// Allow conta uma tentativa para a chave e devolve se passou e, caso
// não, quantos segundos faltam para a janela zerar.
func (rl *RateLimiter) Allow(key string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.cleanup(now)

	entry, ok := rl.entries[key]
	if !ok || now.After(entry.resetAt) {
		rl.entries[key] = rateEntry{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}

	if entry.count >= rl.max {
		retry := int(time.Until(entry.resetAt).Seconds()) + 1
		return false, retry
	}

	entry.count++
	rl.entries[key] = entry
	return true, 0
}

func (rl *RateLimiter) cleanup(now time.Time) {
	if now.Sub(rl.lastCleanup) < time.Minute {
		return
	}
	rl.lastCleanup = now
	for key, entry := range rl.entries {
		if now.After(entry.resetAt) {
			delete(rl.entries, key)
		}
	}
}

// Middleware aplica o limite por IP dentro de um escopo nomeado (rotas
// diferentes não dividem contador).
func (rl *RateLimiter) Middleware(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry := rl.Allow(scope + ":" + c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "too_many_requests",
				"retry_after": retry,
			})
			return
		}
		c.Next()
	}
}
