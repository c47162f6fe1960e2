package dqfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lvillar/dqfile/layout"
)

// Config is the carrier configuration read from a TOML file:
//
//	[company]
//	name = "Acme Freight"
//	dot_number = "1234567"
//	logo = "logo.png"
//
//	[output]
//	compress = true
type Config struct {
	Company CompanyConfig `toml:"company"`
	Output  OutputConfig  `toml:"output"`
}

// CompanyConfig is the [company] table.
type CompanyConfig struct {
	Name      string `toml:"name"`
	Address   string `toml:"address"`
	Phone     string `toml:"phone"`
	DOTNumber string `toml:"dot_number"`
	MCNumber  string `toml:"mc_number"`
	Logo      string `toml:"logo"` // image path, relative to the config file
}

// OutputConfig is the [output] table.
type OutputConfig struct {
	Compress      *bool  `toml:"compress"`
	ControlPrefix string `toml:"control_prefix"`
}

// LoadConfig reads a TOML configuration file. The logo, if any, is read
// relative to the file's directory.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("dqfile: reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("dqfile: config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Company.Logo != "" && !filepath.IsAbs(cfg.Company.Logo) {
		cfg.Company.Logo = filepath.Join(filepath.Dir(path), cfg.Company.Logo)
	}
	return &cfg, nil
}

// Options converts the configuration into Generate options.
func (c *Config) Options() ([]Option, error) {
	co := layout.Company{
		Name:      c.Company.Name,
		Address:   c.Company.Address,
		Phone:     c.Company.Phone,
		DOTNumber: c.Company.DOTNumber,
		MCNumber:  c.Company.MCNumber,
	}
	if co.Name == "" {
		co.Name = DefaultCompany.Name
	}
	if c.Company.Logo != "" {
		data, err := os.ReadFile(c.Company.Logo)
		if err != nil {
			return nil, fmt.Errorf("dqfile: reading logo: %w", err)
		}
		co.Logo = data
	}
	opts := []Option{WithCompany(co)}
	if c.Output.Compress != nil {
		opts = append(opts, WithCompression(*c.Output.Compress))
	}
	if c.Output.ControlPrefix != "" {
		opts = append(opts, WithControlPrefix(c.Output.ControlPrefix))
	}
	return opts, nil
}
