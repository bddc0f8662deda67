// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("availability record not found")

// Repository stores one serialized availability record per key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
	Ping(ctx context.Context) error
	Name() string
}

// Drivers accepted by Open.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Options carries what each driver needs; unused fields are ignored.
type Options struct {
	Driver  string
	DataDir string
	Redis   *redis.Client
	MongoDB *mongo.Database
}

// Open builds the repository selected by opts.Driver.
func Open(opts Options) (Repository, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFileRepo(opts.DataDir)
	case DriverRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("redis driver selected without a redis client")
		}
		return NewRedisRepo(opts.Redis), nil
	case DriverMongo:
		if opts.MongoDB == nil {
			return nil, fmt.Errorf("mongo driver selected without a database")
		}
		return NewMongoRepo(opts.MongoDB), nil
	case DriverMemory:
		return NewMemoryRepo(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
