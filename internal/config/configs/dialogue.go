package configs

// Dialogue holds the slot-filling thresholds.
type Dialogue struct {
	// MinBudget is the smallest accepted budget in the smallest currency unit.
	MinBudget        int64  `env:"MIN_BUDGET" envDefault:"50000"`
	DefaultObjective string `env:"DEFAULT_OBJECTIVE" envDefault:"OUTCOME_ENGAGEMENT"`
}
