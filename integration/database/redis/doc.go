// Package redis connects to Redis with retries and exposes a health check.
//
//	rdb, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://localhost:6379/0"})
//	if err != nil {
//		return err
//	}
//	defer rdb.Close()
//
//	r.Get("/health/ready", health.Readiness[*router.Context](log, redis.Healthcheck(rdb)))
//
// Only redis:// and rediss:// URLs are accepted. Connect pings the server
// after each attempt and waits RetryInterval between failed attempts, giving
// up after RetryAttempts or when ctx is done.
package redis
