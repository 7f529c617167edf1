package pool

import (
	"context"
	"fmt"
	"testing"

	fx "github.com/osse101/slotforge/internal/testing/slotfixture"
	"github.com/osse101/slotforge/internal/worker"
)

func BenchmarkBuild(b *testing.B) {
	tables := tablesFrom(fx.Classic(), 1)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			w := worker.NewPool(workers, 16)
			w.Start()
			defer w.Stop()
			builder := NewBuilder(w)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := builder.Build(context.Background(), tables, 50, Options{Seed: uint64(i + 1)}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
