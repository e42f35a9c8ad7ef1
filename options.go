package cube

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// RandSource picks uniformly from [0, n). *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	labeled bool
	history bool
	rand    RandSource
	logger  *log.Logger
}

func defaultConfig() *config {
	return &config{
		labeled: false,
		history: true,
	}
}

// WithLabeledStickers selects labeled JSON output, where every sticker is
// written as {index, value} instead of a bare colour.
func WithLabeledStickers(enabled bool) Option {
	return func(c *config) {
		c.labeled = enabled
	}
}

// WithHistory enables or disables turn history tracking.
// When enabled (default), applied turns are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}

// WithRand sets the random source used for scrambles.
func WithRand(r RandSource) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithSeed seeds a private random source so scrambles are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger logs every applied turn at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func (c *config) randSource() RandSource {
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.rand
}
