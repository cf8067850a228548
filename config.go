package msgparser

import (
	"sync"

	"github.com/riverfjs/msgparser-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// EmoteIDToken is the placeholder for the emote id in RenderConfig.EmoteURL.
const EmoteIDToken = types.EmoteIDToken

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers must not modify it; use WithCustomEmoji and friends instead.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
