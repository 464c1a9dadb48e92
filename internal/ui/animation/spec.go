package animation

// Pattern selects how loudly a transition is flashed.
type Pattern int

const (
	PatternPhaseChange Pattern = iota
	PatternFinished
)

// Flashes returns how many on/off cycles the pattern runs.
func (config Config) Flashes(pattern Pattern) int {
	if pattern == PatternFinished {
		return config.FinishedFlashes
	}
	return config.PhaseFlashes
}
