package currency_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentReaders(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for c := range currency.All() {
				got, ok := currency.FromCode(c.Code())
				if !ok || got != c {
					return fmt.Errorf("FromCode(%q) = %v, %v", c.Code(), got, ok)
				}
				got, ok = currency.FromNumeric(c.Numeric())
				if !ok || got != c {
					return fmt.Errorf("FromNumeric(%d) = %v, %v", c.Numeric(), got, ok)
				}
				_ = c.Symbol()
				_ = c.UsedBy()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
