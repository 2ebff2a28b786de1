package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/passrank/passrank-api/pkg/api"
	"github.com/passrank/passrank-api/pkg/db"
	"github.com/passrank/passrank-api/pkg/util"
	"github.com/redis/go-redis/v9"
)

func main() {
	godotenv.Load()

	util.InitConfig()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		log.Fatal(err)
	}

	if err := db.InitDB(); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	var limiter *api.RateLimiter

	if url := util.Config.RedisURL; url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sentry.CaptureException(err)
			log.Fatal(err)
		}
		limiter = api.NewRateLimiter(rdb, util.Config.RateLimit, util.Config.RateWindow)
	} else {
		slog.Warn("REDIS_URL not set, rate limiting disabled")
	}

	r := api.Router(limiter)

	sentry.CaptureMessage("Starting API")

	log.Printf("Starting server at %s\n", util.Config.Port)
	http.ListenAndServe(util.Config.Port, r)

	sentry.Flush(time.Second * 5)
}
