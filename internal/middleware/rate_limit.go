package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"image-board/internal/consts"
	"image-board/internal/platform/cache"
	"image-board/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 创建一个按 IP 的动态限流中间件，rps/burst 每次请求从配置读取。
// Redis 可用时使用固定窗口计数，多实例共享额度；Redis 出错时回退内存令牌桶。
func RateLimitMiddleware(appService *service.AppService, redisCache *cache.Redis, rpsKey string, burstKey string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := appService.GetFloat64(rpsKey)
		currentBurst := appService.GetInt(burstKey)
		ip := c.ClientIP()

		if redisCache.Available() {
			ok, err := allowByRedisRateLimit(redisCache.Client, redisCache.Key("rate", rpsKey, ip), currentRPS, currentBurst)
			if err == nil {
				if !ok {
					abortTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 限流失败，回退内存限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)

		// 配置变更后同步到已有 limiter
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			abortTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func abortTooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
	c.Abort()
}

// allowByRedisRateLimit 固定窗口：窗口长度 burst/rps 秒，窗口内最多 burst 次。
// rps 或 burst 不大于 0 时不限流。
func allowByRedisRateLimit(client *redis.Client, key string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}

	window := time.Duration(math.Ceil(float64(burst)/rps)) * time.Second
	if window < time.Second {
		window = time.Second
	}
	windowKey := key + ":" + strconv.FormatInt(time.Now().UnixNano()/int64(window), 10)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var incr *redis.IntCmd
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(burst), nil
}
