package cart

import (
	"testing"

	"github.com/nslux/shopctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore captures every persisted snapshot.
type recordingStore struct {
	saves []model.Cart
}

func (r *recordingStore) SaveCart(cart model.Cart) error {
	r.saves = append(r.saves, cart)
	return nil
}

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: price}
}

func TestAdd(t *testing.T) {
	t.Run("adding new product inserts a snapshot line", func(t *testing.T) {
		store := &recordingStore{}
		m := NewManager(store, nil)

		require.NoError(t, m.Add(model.Product{
			ID: "p1", Name: "Perfume", Price: 120, Image: "/img/p1.jpg", Category: "fragrance",
		}, 2))

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "p1", lines[0].ProductID)
		assert.Equal(t, "Perfume", lines[0].Name)
		assert.Equal(t, "/img/p1.jpg", lines[0].Image)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("adding same product merges quantities into one line", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)

		require.NoError(t, m.Add(product("p1", 100), 2))
		require.NoError(t, m.Add(product("p1", 100), 3))

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("quantity below one normalizes to one", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)

		require.NoError(t, m.Add(product("p1", 100), 0))
		require.NoError(t, m.Add(product("p2", 50), -4))

		assert.Equal(t, 2, m.ItemCount())
	})

	t.Run("no two lines ever share a product id", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)

		for i := 0; i < 10; i++ {
			require.NoError(t, m.Add(product("p1", 10), 1))
			require.NoError(t, m.Add(product("p2", 20), 1))
		}

		seen := map[string]bool{}
		for _, line := range m.Lines() {
			assert.False(t, seen[line.ProductID], "duplicate line for %s", line.ProductID)
			seen[line.ProductID] = true
		}
		assert.Len(t, m.Lines(), 2)
	})
}

func TestRemove(t *testing.T) {
	t.Run("removes existing line", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)
		require.NoError(t, m.Add(product("p1", 100), 1))
		require.NoError(t, m.Add(product("p2", 50), 1))

		require.NoError(t, m.Remove("p1"))

		lines := m.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "p2", lines[0].ProductID)
	})

	t.Run("removing absent id is a no-op", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)
		require.NoError(t, m.Add(product("p1", 100), 1))

		require.NoError(t, m.Remove("missing"))
		assert.Len(t, m.Lines(), 1)
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("sets absolute quantity, not a delta", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)
		require.NoError(t, m.Add(product("p1", 100), 5))

		require.NoError(t, m.SetQuantity("p1", 2))
		assert.Equal(t, 2, m.Lines()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)
		require.NoError(t, m.Add(product("p1", 100), 5))

		require.NoError(t, m.SetQuantity("p1", 0))
		assert.Empty(t, m.Lines())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)
		require.NoError(t, m.Add(product("p1", 100), 5))

		require.NoError(t, m.SetQuantity("p1", -5))
		assert.Empty(t, m.Lines())
	})

	t.Run("repeated on absent id stays a no-op", func(t *testing.T) {
		m := NewManager(&recordingStore{}, nil)

		require.NoError(t, m.SetQuantity("missing", 0))
		require.NoError(t, m.SetQuantity("missing", 0))
		assert.Empty(t, m.Lines())
	})
}

func TestDerivedTotals(t *testing.T) {
	m := NewManager(&recordingStore{}, nil)
	require.NoError(t, m.Add(product("p1", 100.5), 2))
	require.NoError(t, m.Add(product("p2", 49.99), 3))

	assert.InDelta(t, 100.5*2+49.99*3, m.Total(), 1e-9)
	assert.Equal(t, 5, m.ItemCount())

	require.NoError(t, m.SetQuantity("p1", 1))
	assert.InDelta(t, 100.5+49.99*3, m.Total(), 1e-9)
}

func TestClear(t *testing.T) {
	m := NewManager(&recordingStore{}, nil)
	require.NoError(t, m.Add(product("p1", 100), 2))

	require.NoError(t, m.Clear())
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0.0, m.Total())
	assert.Equal(t, 0, m.ItemCount())
}

func TestEveryMutationPersists(t *testing.T) {
	store := &recordingStore{}
	m := NewManager(store, nil)

	require.NoError(t, m.Add(product("p1", 100), 1))
	require.NoError(t, m.SetQuantity("p1", 4))
	require.NoError(t, m.Remove("p1"))
	require.NoError(t, m.Clear())

	require.Len(t, store.saves, 4)
	assert.Equal(t, 1, store.saves[0][0].Quantity)
	assert.Equal(t, 4, store.saves[1][0].Quantity)
	assert.Empty(t, store.saves[2])
	assert.Empty(t, store.saves[3])
}

func TestSeededFromPersistedCart(t *testing.T) {
	initial := model.Cart{{ProductID: "p1", Name: "Perfume", Price: 120, Quantity: 2}}
	m := NewManager(&recordingStore{}, initial)

	assert.Equal(t, 2, m.ItemCount())
	require.NoError(t, m.Add(product("p1", 120), 1))
	assert.Equal(t, 3, m.Lines()[0].Quantity)
}
