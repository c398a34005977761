package domain

import (
	"fmt"
	"strings"
)

// Outcome selects which result branch of a recipe is produced
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFail    Outcome = "fail"
)

// Defaults applied to recipes created without explicit values
const (
	DefaultRecipeCategory      = "General"
	DefaultRecipeSuccessChance = 100
	MinSuccessChance           = 1
	MaxSuccessChance           = 100
)

// ParseOutcome converts a raw outcome string, case-insensitively
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToLower(strings.TrimSpace(s))) {
	case OutcomeSuccess:
		return OutcomeSuccess, nil
	case OutcomeFail:
		return OutcomeFail, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
}

// Valid reports whether o is a known outcome
func (o Outcome) Valid() bool {
	return o == OutcomeSuccess || o == OutcomeFail
}

// Recipe is a crafting definition together with its cost and result lines.
// ID 0 marks a recipe that has not been persisted.
type Recipe struct {
	ID            int              `json:"id" validate:"gte=0,lte=2147483647"`
	Name          string           `json:"name" validate:"required,notblank,max=100"`
	Category      string           `json:"category" validate:"required,notblank,max=50"`
	SuccessChance int              `json:"successChance" validate:"gte=1,lte=100"`
	Costs         []CraftingCost   `json:"costs" validate:"dive"`
	Results       []CraftingResult `json:"results" validate:"dive"`
}

// CraftingCost is one required input. Remove=false marks a tool that is
// checked for sufficiency but never consumed.
type CraftingCost struct {
	ID       int  `json:"id,omitempty"`
	RecipeID int  `json:"recipeId,omitempty"`
	ItemID   int  `json:"itemId" validate:"gt=0,lte=2147483647"`
	Amount   int  `json:"amount" validate:"gte=1,lte=2147483647"`
	Remove   bool `json:"remove"`
}

// CraftingResult is one output produced when the chosen outcome matches Type
type CraftingResult struct {
	ID       int     `json:"id,omitempty"`
	RecipeID int     `json:"recipeId,omitempty"`
	ItemID   int     `json:"itemId" validate:"gt=0,lte=2147483647"`
	Amount   int     `json:"amount" validate:"gte=1,lte=2147483647"`
	Type     Outcome `json:"type" validate:"oneof=success fail"`
}

// IsNew reports whether the recipe has not been persisted yet
func (r Recipe) IsNew() bool {
	return r.ID == 0
}

// ItemIDs returns the distinct item IDs referenced by the recipe lines
func (r Recipe) ItemIDs() []int {
	seen := make(map[int]struct{}, len(r.Costs)+len(r.Results))
	ids := make([]int, 0, len(r.Costs)+len(r.Results))
	add := func(id int) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, c := range r.Costs {
		add(c.ItemID)
	}
	for _, res := range r.Results {
		add(res.ItemID)
	}
	return ids
}

// ResultsFor returns the result lines produced by the given outcome
func (r Recipe) ResultsFor(outcome Outcome) []CraftingResult {
	var out []CraftingResult
	for _, res := range r.Results {
		if res.Type == outcome {
			out = append(out, res)
		}
	}
	return out
}
