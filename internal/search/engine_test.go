package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
	"headersearch/internal/eventbus"
)

func TestEngineSearchGroupsAndCaps(t *testing.T) {
	var machines []domain.MachineRecord
	var products []domain.ProductRecord
	for i := 0; i < 8; i++ {
		machines = append(machines, domain.MachineRecord{ID: fmt.Sprintf("m%d", i), Name: "Tejedora", Brand: "STOLL"})
		products = append(products, domain.ProductRecord{ID: fmt.Sprintf("p%d", i), Name: "Repuesto tejedora"})
	}
	e := NewEngine(catalog.NewStore(machines, products), NewDefaultRouter(), nil)

	got := e.Search("tejedora")

	counts := CountByCategory(got)
	assert.Equal(t, MaxMachineResults, counts[domain.CategoryMachine])
	assert.Equal(t, MaxProductResults, counts[domain.CategoryProduct])
	assert.Equal(t, "m0", got[0].SourceID)
	assert.Equal(t, "p0", got[MaxMachineResults].SourceID)
}

func TestEngineSearchPublishesCompletion(t *testing.T) {
	machines, products := testCatalog()
	bus := eventbus.New()
	defer bus.Close()

	events := make(chan domain.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		events <- e.(domain.SearchCompletedEvent)
	})

	e := NewEngine(catalog.NewStore(machines, products), NewDefaultRouter(), bus)
	got := e.Search("stoll")

	select {
	case ev := <-events:
		assert.Equal(t, "stoll", ev.Query)
		assert.Equal(t, len(got), ev.MatchCount)
		assert.Equal(t, 1, ev.Counts[domain.CategoryPage])
	case <-time.After(time.Second):
		t.Fatal("no SearchCompleted event")
	}
}

func TestEngineEmptyQuery(t *testing.T) {
	store, err := catalog.Load("", "")
	require.NoError(t, err)
	e := NewEngine(store, NewDefaultRouter(), nil)

	assert.Empty(t, e.Search(""))
	assert.Same(t, store, e.Store())
}
