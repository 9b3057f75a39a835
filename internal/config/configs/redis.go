package configs

import "time"

// Redis holds configuration for the counter store connection. OpTimeout is
// deliberately short: counter reads and writes sit on the storefront's
// critical rendering path.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	// Password authenticates the connection when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical Redis database.
	DB int `env:"DB" envDefault:"0"`
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"2s"`
	// OpTimeout bounds individual commands.
	OpTimeout time.Duration `env:"OP_TIMEOUT" envDefault:"150ms"`
}
