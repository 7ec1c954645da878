package racing

import (
	"fmt"

	"github.com/vunguyen10111995/horse-racing-game/models"
)

// DefaultHorseCount is the pool size a new game starts with.
const DefaultHorseCount = 20

var horseNames = []string{
	"Thunder", "Lightning", "Storm", "Blaze", "Spirit",
	"Shadow", "Comet", "Star", "Phoenix", "Apollo",
	"Zeus", "Atlas", "Titan", "Neptune", "Mercury",
	"Pegasus", "Orion", "Flash", "Rocket", "Dash",
}

var horseColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B739", "#52B788",
	"#E63946", "#A8DADC", "#457B9D", "#F1FAEE", "#E76F51",
	"#264653", "#2A9D8F", "#E9C46A", "#F4A261", "#6C5CE7",
}

// PoolSize is the largest pool GenerateHorses accepts.
func PoolSize() int { return len(horseNames) }

// GenerateHorses builds a fresh pool of n horses with ids 1..n.
// Names and colors are positional; only condition is random.
func GenerateHorses(n int, rng RNG) ([]models.Horse, error) {
	if n < 1 || n > PoolSize() {
		return nil, fmt.Errorf("%w: got %d, pool holds %d", ErrInvalidHorseCount, n, PoolSize())
	}

	horses := make([]models.Horse, n)
	for i := range n {
		horses[i] = models.Horse{
			ID:        i + 1,
			Name:      horseNames[i],
			Color:     horseColors[i],
			Condition: models.MinCondition + rng.IntN(models.MaxCondition),
		}
	}
	return horses, nil
}
