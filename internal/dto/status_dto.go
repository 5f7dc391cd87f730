package dto

type SessionStatusResponse struct {
	CacheSize        int    `json:"cache_size"`
	CacheCapacity    int    `json:"cache_capacity"`
	RateLimiterReady bool   `json:"rate_limiter_ready"`
	RateLimitWaitMs  int64  `json:"rate_limit_wait_ms"`
	ConversationLen  int    `json:"conversation_len"`
	CreatedAt        string `json:"created_at"`
}

type SystemStatusResponse struct {
	ApiConfigured  bool   `json:"api_configured"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	ActiveSessions int    `json:"active_sessions"`

	// Resolution counters by provenance, aggregated from the event bus.
	Resolutions map[string]int64 `json:"resolutions"`
}
