package utctimetest_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aelexs/utctime/pkg/utctime"
	"github.com/aelexs/utctime/pkg/utctime/utctimetest"
)

func TestFakeProvider(t *testing.T) {
	fixedTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns fixed instant", func(t *testing.T) {
		p := utctimetest.NewFakeProvider(utctime.MustNew(fixedTime))
		assert.True(t, p.CurrentInstant().Time().Equal(fixedTime))
		assert.True(t, p.Now().Equal(fixedTime))
	})

	t.Run("normalizes zoned start", func(t *testing.T) {
		p := utctimetest.NewFakeProviderAt(fixedTime.In(time.FixedZone("+01", 3600)))
		assert.Equal(t, utctime.MustNew(fixedTime), p.CurrentInstant())
	})

	t.Run("advance moves time forward", func(t *testing.T) {
		p := utctimetest.NewFakeProviderAt(fixedTime)
		p.Advance(1 * time.Hour)

		assert.True(t, p.Now().Equal(fixedTime.Add(1*time.Hour)))
	})

	t.Run("set changes time", func(t *testing.T) {
		p := utctimetest.NewFakeProviderAt(fixedTime)
		next := utctime.MustNew(time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))
		p.Set(next)

		assert.Equal(t, next, p.CurrentInstant())
	})

	t.Run("concurrent advance", func(t *testing.T) {
		p := utctimetest.NewFakeProviderAt(fixedTime)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.Advance(time.Second)
				_ = p.CurrentInstant()
			}()
		}
		wg.Wait()

		assert.True(t, p.Now().Equal(fixedTime.Add(50*time.Second)))
	})
}
