package crafting

import "github.com/osse101/CraftLedger_Go/internal/domain"

// CanCraft reports whether snapshot covers every cost line of the recipe,
// whether the line is consumed or only required. Absent items count as zero.
func CanCraft(recipe domain.Recipe, snapshot domain.Snapshot) bool {
	for _, cost := range recipe.Costs {
		if snapshot.Amount(cost.ItemID) < cost.Amount {
			return false
		}
	}
	return true
}

// Shortfall lists the cost lines snapshot cannot cover
func Shortfall(recipe domain.Recipe, snapshot domain.Snapshot) []domain.MissingMaterial {
	missing := []domain.MissingMaterial{}
	for _, cost := range recipe.Costs {
		if have := snapshot.Amount(cost.ItemID); have < cost.Amount {
			missing = append(missing, domain.MissingMaterial{
				ItemID:   cost.ItemID,
				Required: cost.Amount,
				OnHand:   have,
			})
		}
	}
	return missing
}
