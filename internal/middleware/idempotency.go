package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency menyimpan response POST per (route, user, Idempotency-Key).
// Handler wajib memanggil StoreIdempotentResponse setelah selesai.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock" // Key khusus untuk locking

		// 1. CEK CACHE (Seperti sebelumnya)
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			if json.Unmarshal([]byte(val), &cachedRes) == nil {
				c.Header("Idempotent-Replay", "true")
				response.Success(c, http.StatusOK, cachedRes, nil)
				c.Abort()
				return
			}
		}

		// 2. ATOMIC LOCK (SetNX)
		// Mencoba membuat key 'lock'. Jika sudah ada, berarti request lain sedang jalan.
		// Set expiry pendek (misal 30 detik) agar jika server crash, lock otomatis hilang.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			// Request ganda terdeteksi saat proses masih berlangsung!
			response.Error(c, http.StatusConflict, "PROCESSING", "Transaksi Anda sedang diproses, mohon tunggu sebentar.", nil)
			c.Abort()
			return
		}

		// Tambahkan lockKey ke context agar bisa dihapus oleh Handler setelah selesai
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// StoreIdempotentResponse melepas lock dan menyimpan hasil sukses selama ttl.
// Jika request gagal (data nil), hanya lock yang dihapus supaya client bisa retry.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, data any, ttl time.Duration) {
	ctx := c.Request.Context()
	if lockKey := c.GetString("idempotency_lock_key"); lockKey != "" {
		rdb.Del(ctx, lockKey)
	}

	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || data == nil {
		return
	}
	if raw, err := json.Marshal(data); err == nil {
		rdb.Set(ctx, cacheKey, raw, ttl)
	}
}
