package counter

import "time"

// Config holds counter settings loaded from the environment.
// An empty APIURL means the studio serves and reads its own counter.
type Config struct {
	APIURL   string        `env:"COUNTER_API_URL" envDefault:""`
	Timeout  time.Duration `env:"COUNTER_TIMEOUT" envDefault:"5s"`
	RedisKey string        `env:"COUNTER_REDIS_KEY" envDefault:"qrstudio:counters:total:ip"`
}
