package config

// FeedConfig controls how the schedule feed is fetched.
// RetryInitial is the first backoff delay; MinInterval spaces consecutive upstream calls.
type FeedConfig struct {
	ScheduleURL  string   `koanf:"schedule_url"`
	Timeout      Duration `koanf:"timeout"`
	MaxAttempts  int      `koanf:"max_attempts"`
	RetryInitial Duration `koanf:"retry_initial"`
	MinInterval  Duration `koanf:"min_interval"`
}

func defaultFeed() FeedConfig {
	return FeedConfig{
		ScheduleURL:  defaultScheduleURL,
		Timeout:      defaultFeedTimeout,
		MaxAttempts:  defaultFeedAttempts,
		RetryInitial: defaultFeedBackoff,
		MinInterval:  defaultFeedMinGap,
	}
}

func loadFeed(base FeedConfig) FeedConfig {
	return FeedConfig{
		ScheduleURL:  envOrDefault(envScheduleURL, base.ScheduleURL),
		Timeout:      durationEnvOrDefault(envFeedTimeout, base.Timeout),
		MaxAttempts:  intEnvOrDefault(envFeedAttempts, base.MaxAttempts),
		RetryInitial: durationEnvOrDefault(envFeedBackoff, base.RetryInitial),
		MinInterval:  durationEnvOrDefault(envFeedMinGap, base.MinInterval),
	}
}
