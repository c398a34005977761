package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osse101/CraftLedger_Go/internal/domain"
)

type scanner interface{ Scan(...any) error }

const (
	itemCols   = `id, name, price, category, image`
	recipeCols = `id, name, category, success_chance`
	costCols   = `id, recipe_id, item_id, amount, remove`
	resultCols = `id, recipe_id, item_id, amount, outcome`
)

func scanItem(s scanner) (domain.Item, error) {
	var it domain.Item
	var image sql.NullString
	if err := s.Scan(&it.ID, &it.Name, &it.Price, &it.Category, &image); err != nil {
		return domain.Item{}, err
	}
	if image.Valid {
		it.Image = &image.String
	}
	return it, nil
}

func scanRecipe(s scanner) (domain.Recipe, error) {
	var r domain.Recipe
	err := s.Scan(&r.ID, &r.Name, &r.Category, &r.SuccessChance)
	r.Costs = []domain.CraftingCost{}
	r.Results = []domain.CraftingResult{}
	return r, err
}

func scanCost(s scanner) (domain.CraftingCost, error) {
	var c domain.CraftingCost
	err := s.Scan(&c.ID, &c.RecipeID, &c.ItemID, &c.Amount, &c.Remove)
	return c, err
}

func scanResult(s scanner) (domain.CraftingResult, error) {
	var r domain.CraftingResult
	var outcome string
	err := s.Scan(&r.ID, &r.RecipeID, &r.ItemID, &r.Amount, &outcome)
	r.Type = domain.Outcome(outcome)
	return r, err
}

// queryAll runs a query and scans every row. Rows are closed before returning
// so the single connection is free for the next statement.
func queryAll[T any](ctx context.Context, q querier, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
