package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/apex/log"

	"xiangqi/internal/engine"
)

var (
	cfgFile = "xiangqi/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// SearchConfig 电脑走棋的默认设置
type SearchConfig struct {
	Depth    int    `json:"depth"`
	Strategy string `json:"strategy"`
}

type Config struct {
	Search   SearchConfig `json:"search"`
	LogLevel string       `json:"log_level"`
}

var DefaultConfig = Config{
	Search: SearchConfig{
		Depth:    engine.DefaultDepth,
		Strategy: string(engine.StrategyAlphaBeta),
	},
	LogLevel: "info",
}

// InitConfig 在 XDG 配置目录里找 xiangqi/config.json，没有就用默认值
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return &config, nil
	}
	return Load(absPath)
}

// Load 读取指定文件，文件里没写的字段保持默认值
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	data, err := os.ReadFile(filePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Search.Depth < 1 || c.Search.Depth > engine.MaxDepth {
		return &InvalidConfig{fmt.Sprintf("search depth must be between 1 and %d", engine.MaxDepth)}
	}
	if _, err := engine.ParseStrategy(c.Search.Strategy); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level %q", c.LogLevel)}
	}
	return nil
}

// Override 用命令行参数覆盖搜索设置，并做与配置文件相同的校验
func (c *Config) Override(depth int, strategy string) error {
	c.Search.Depth = depth
	c.Search.Strategy = strategy
	return c.Validate()
}

// EngineConfig 转成搜索配置
func (c *Config) EngineConfig() engine.SearchConfig {
	strategy, _ := engine.ParseStrategy(c.Search.Strategy)
	return engine.SearchConfig{
		Depth:    c.Search.Depth,
		Strategy: strategy,
	}
}

// Level 日志级别，Validate 之后不会出错
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
