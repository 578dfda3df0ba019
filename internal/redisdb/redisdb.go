package redisdb

import (
	"context"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/appenv"
)

type Config struct {
	Addr       string
	Username   string
	Password   string
	DB         int
	ClientName string
}

func ConfigFromEnv() Config {
	return Config{
		Addr:       appenv.GetString("REDIS_ADDR", "localhost:6379"),
		Username:   appenv.GetString("REDIS_USERNAME", ""),
		Password:   appenv.GetString("REDIS_PASSWORD", ""),
		DB:         appenv.GetInt("REDIS_DB", 0),
		ClientName: appenv.EnvName + "_" + appenv.GetString("REDIS_CLIENT_NAME", "portfolio"),
	}
}

// NewRedisClient connects and pings the server. The caller decides whether a
// failed ping is fatal.
func NewRedisClient(ctx context.Context, conf Config, log zerolog.Logger) (*redis.Client, error) {
	log.Info().Msgf("Connecting to redis server on address=%s, username=%s, clientName=%s .....", conf.Addr, conf.Username, conf.ClientName)

	readTimeout := 3 * time.Second
	client := redis.NewClient(&redis.Options{
		Addr:            conf.Addr,
		Network:         "tcp",
		Password:        conf.Password,
		Username:        conf.Username,
		ClientName:      conf.ClientName,
		DB:              conf.DB,
		Protocol:        3,
		ConnMaxIdleTime: 30 * time.Minute,
		IdentitySuffix:  appenv.EnvName,
		MaxIdleConns:    1,
		PoolSize:        10 * runtime.NumCPU(),
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		MaxRetries:      3,
		ReadTimeout:     readTimeout,
		WriteTimeout:    3 * time.Second,
		DialTimeout:     5 * time.Second,
		PoolTimeout:     readTimeout + time.Second,
		OnConnect: func(ctx context.Context, cn *redis.Conn) error {
			log.Info().Msgf("Connected to redis server on address=%s, clientName=%s", conf.Addr, conf.ClientName)
			return nil
		},
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
