package main

import (
	"strings"
	"sync"

	"github.com/gonewx/aseanim/pkg/config"
)

const defaultConfigPath = "sprites.yaml"

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.LoaderConfig
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil || strings.TrimSpace(*c.configFlag) == "" {
		return defaultConfigPath
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.LoaderConfig, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.LoadLoaderConfig(c.configPath())
	})
	return c.config, c.configErr
}
