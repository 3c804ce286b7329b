package defs

import "time"

// MinSpawnInterval is the shortest gap between two spawns of one wave.
const MinSpawnInterval = 10 * time.Millisecond

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Count         int           `yaml:"count"`          // Количество врагов в волне
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Интервал между появлением врагов
}

// Sanitized returns a copy with a non-negative count and an interval of at
// least MinSpawnInterval.
func (w WaveDefinition) Sanitized() WaveDefinition {
	if w.Count < 0 {
		w.Count = 0
	}
	if w.SpawnInterval < MinSpawnInterval {
		w.SpawnInterval = MinSpawnInterval
	}
	return w
}

// DefaultWavePlan определяет последовательность волн в игре.
func DefaultWavePlan() []WaveDefinition {
	return []WaveDefinition{
		{Count: 3, SpawnInterval: 700 * time.Millisecond},
		{Count: 5, SpawnInterval: 700 * time.Millisecond},
		{Count: 7, SpawnInterval: 700 * time.Millisecond},
		{Count: 9, SpawnInterval: 700 * time.Millisecond},
	}
}

// TotalEnemies sums the counts of a plan, ignoring negative entries.
func TotalEnemies(plan []WaveDefinition) int {
	total := 0
	for _, w := range plan {
		if w.Count > 0 {
			total += w.Count
		}
	}
	return total
}
