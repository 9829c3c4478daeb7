package bakery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/networkteam/bakery-e2e/bakery"
)

func TestSearchRefs(t *testing.T) {
	assert.Equal(t, []int{1}, bakery.SearchRefs("croissant"))
	assert.Equal(t, []int{5, 7}, bakery.SearchRefs("CAKE"))
	assert.Empty(t, bakery.SearchRefs("pizza"))
	assert.Equal(t, bakery.AllRefs(), bakery.SearchRefs(""))
}

func TestFilterRefs(t *testing.T) {
	assert.Equal(t, []int{2, 3, 8}, bakery.FilterRefs(bakery.CategoryBread))
	assert.Equal(t, []int{1, 4, 6}, bakery.FilterRefs(bakery.CategoryPastry))
	assert.Equal(t, bakery.AllRefs(), bakery.FilterRefs(bakery.CategoryAll))

	// Every item belongs to exactly one filterable category.
	seen := 0
	for _, c := range bakery.Categories {
		seen += len(bakery.FilterRefs(c))
	}
	assert.Equal(t, len(bakery.Menu), seen)
}

func TestItem(t *testing.T) {
	item, err := bakery.Item(5)
	require.NoError(t, err)
	assert.Equal(t, "4.00", item.Price.String())

	_, err = bakery.Item(42)
	assert.Error(t, err)
	assert.Panics(t, func() { bakery.MustItem(0) })
}

func TestMenuRefsAreSequential(t *testing.T) {
	for i, item := range bakery.Menu {
		assert.Equal(t, i+1, item.Ref, "menu item %q", item.Name)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    bakery.Money
		wantErr bool
	}{
		{in: "7.15", want: 715},
		{in: "$2.50", want: 250},
		{in: " 4 ", want: 400},
		{in: "0.5", want: 50},
		{in: "1.234", wantErr: true},
		{in: "abc", wantErr: true},
		{in: ".50", wantErr: true},
		{in: "-0.50", want: -50},
		{in: "-$1", wantErr: true},
		{in: "$-7.15", want: -715},
		{in: "1.-5", wantErr: true},
		{in: "+1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := bakery.ParseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoney_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := bakery.Money(rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, "cents"))
		got, err := bakery.ParseMoney(m.String())
		if err != nil {
			t.Fatalf("parsing %s: %v", m, err)
		}
		if got != m {
			t.Fatalf("%s parsed as %d, want %d", m, got, m)
		}
	})
}

func TestDashboardPageIDsIncludeMenu(t *testing.T) {
	ids := bakery.DashboardPageIDs()
	assert.Contains(t, ids, bakery.MenuItemID(8))
	assert.Contains(t, ids, bakery.QuickAddID(1))
	assert.Contains(t, ids, bakery.FilterID(bakery.CategoryCake))
	assert.Contains(t, ids, bakery.FilterID(bakery.CategoryAll))
}
