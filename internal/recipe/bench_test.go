package recipe

import (
	"context"
	"testing"

	"github.com/osse101/CraftLedger_Go/internal/concurrency"
	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/testing/memstore"
)

func benchService(b *testing.B) Service {
	b.Helper()
	store := memstore.New()
	for id := 1; id <= 5; id++ {
		store.PutItem(domain.Item{ID: id, Name: "Item", Price: id, Category: "Bench"})
	}
	return NewService(store.Recipes(), nil, nil, concurrency.NewLockManager[int]())
}

func BenchmarkSaveRecipe_Insert(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SaveRecipe(ctx, smelt()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSaveRecipe_Update(b *testing.B) {
	svc := benchService(b)
	ctx := context.Background()
	saved, err := svc.SaveRecipe(ctx, smelt())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SaveRecipe(ctx, saved); err != nil {
			b.Fatal(err)
		}
	}
}
