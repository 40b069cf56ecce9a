package summarizer

// Config tunes the three-tier batch pipeline.
type Config struct {
	DailyBatchCap   int
	WeeklyBatchCap  int
	MonthlyBatchCap int

	FlashModel     string // daily and weekly tiers
	ProModel       string // monthly tier, slower but higher quality
	EmbeddingModel string
}

// DefaultConfig caps one run at 7 days, 4 weeks, 2 months.
func DefaultConfig() Config {
	return Config{
		DailyBatchCap:   7,
		WeeklyBatchCap:  4,
		MonthlyBatchCap: 2,
		FlashModel:      "flash",
		ProModel:        "pro",
		EmbeddingModel:  "embedding",
	}
}
