package cart_test

import (
	"testing"

	"gallery-app/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id uint, price string) cart.Item {
	return cart.Item{ArtworkID: id, Title: "Artwork", Artist: "Njenga", Price: price}
}

func TestStore_AddItem(t *testing.T) {
	t.Run("AppendsAndTotals", func(t *testing.T) {
		s := cart.NewStore()

		c := s.AddItem("c1", item(1, "100"))
		assert.Len(t, c.Items, 1)
		assert.InDelta(t, 100, c.Total, 1e-9)

		c = s.AddItem("c1", item(2, "250"))
		assert.Len(t, c.Items, 2)
		assert.InDelta(t, 350, c.Total, 1e-9)
	})

	t.Run("Idempotent", func(t *testing.T) {
		s := cart.NewStore()

		first := s.AddItem("c1", item(1, "1800"))
		second := s.AddItem("c1", item(1, "1800"))

		assert.Equal(t, first.Items, second.Items)
		assert.InDelta(t, first.Total, second.Total, 1e-9)
		assert.Len(t, second.Items, 1)
	})

	t.Run("UnparsablePriceCountsAsZero", func(t *testing.T) {
		s := cart.NewStore()

		c := s.AddItem("c1", item(1, "not-a-price"))
		require.Len(t, c.Items, 1)
		assert.InDelta(t, 0, c.Total, 1e-9)

		c = s.AddItem("c1", item(2, "50"))
		assert.InDelta(t, 50, c.Total, 1e-9)
	})

	t.Run("CartsAreIndependent", func(t *testing.T) {
		s := cart.NewStore()

		s.AddItem("c1", item(1, "100"))
		c2 := s.Get("c2")

		assert.Empty(t, c2.Items)
		assert.Zero(t, c2.Total)
	})
}

func TestStore_RemoveItem(t *testing.T) {
	t.Run("RemovesAndDecrements", func(t *testing.T) {
		s := cart.NewStore()
		s.AddItem("c1", item(1, "100"))
		s.AddItem("c1", item(2, "250"))

		c := s.RemoveItem("c1", 1)
		require.Len(t, c.Items, 1)
		assert.Equal(t, uint(2), c.Items[0].ArtworkID)
		assert.InDelta(t, 250, c.Total, 1e-9)
	})

	t.Run("UnknownIDIsNoop", func(t *testing.T) {
		s := cart.NewStore()
		s.AddItem("c1", item(1, "100"))

		c := s.RemoveItem("c1", 42)
		assert.Len(t, c.Items, 1)
		assert.InDelta(t, 100, c.Total, 1e-9)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		s := cart.NewStore()

		c := s.RemoveItem("missing", 1)
		assert.Empty(t, c.Items)
		assert.Zero(t, c.Total)
	})

	t.Run("TotalNeverNegative", func(t *testing.T) {
		s := cart.NewStore()
		s.AddItem("c1", item(1, "100"))

		c := s.RemoveItem("c1", 1)
		c = s.RemoveItem("c1", 1)
		assert.GreaterOrEqual(t, c.Total, 0.0)
	})
}

func TestStore_Clear(t *testing.T) {
	s := cart.NewStore()
	s.AddItem("c1", item(1, "100"))
	s.AddItem("c1", item(2, "250"))

	c := s.Clear("c1")
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)

	c = s.Get("c1")
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := cart.NewStore()
	s.AddItem("c1", item(1, "100"))

	c := s.Get("c1")
	c.Items[0].Title = "mutated"

	fresh := s.Get("c1")
	assert.Equal(t, "Artwork", fresh.Items[0].Title)
}
