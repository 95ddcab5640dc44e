package main

import (
	"fmt"
	"strings"
	"sync"

	"vttext/internal/config"
)

type commandContext struct {
	configFlag   *string
	encodingFlag *string
	verboseFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, encodingFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		encodingFlag: encodingFlag,
		verboseFlag:  verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.encodingFlag != nil && strings.TrimSpace(*c.encodingFlag) != "" {
			cfg.Input.Encoding = strings.ToLower(strings.TrimSpace(*c.encodingFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--encoding: %w", err)
				return
			}
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			cfg.Logging.Level = "debug"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}
