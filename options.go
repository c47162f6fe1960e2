package dqfile

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lvillar/dqfile/layout"
)

// Option is a functional option for Generate.
type Option func(*config)

type config struct {
	logger   *log.Logger
	company  layout.Company
	control  string
	prefix   string
	created  time.Time
	compress bool
}

// WithLogger sets the logger that receives build progress and warnings.
// Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCompany sets the motor carrier printed in every page banner.
func WithCompany(co layout.Company) Option {
	return func(c *config) {
		c.company = co
	}
}

// WithControlNumber sets the document control number printed and encoded
// on the checklist page. A random UUID is used when it is not set.
func WithControlNumber(n string) Option {
	return func(c *config) {
		c.control = n
	}
}

// WithCreationDate fixes the creation date written to the document
// information dictionary. Tests use it to make output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.created = t
	}
}

// WithCompression turns Flate compression of page content on or off. It is
// on by default.
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}

// DefaultCompany is printed when no company is configured.
var DefaultCompany = layout.Company{Name: "Motor Carrier"}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:   log.New(io.Discard),
		company:  DefaultCompany,
		compress: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.control == "" {
		cfg.control = cfg.prefix + uuid.NewString()
	}
	if cfg.created.IsZero() {
		cfg.created = time.Now()
	}
	return cfg
}

// WithControlPrefix prepends prefix to the generated control number. It has
// no effect when WithControlNumber is also given.
func WithControlPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}
