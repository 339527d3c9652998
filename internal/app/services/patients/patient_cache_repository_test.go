package patients

import (
	"testing"

	"sonrisitas-client/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func cacheFixture() []responses.Patient {
	return []responses.Patient{
		{ID: "1", Nombre: "Ana", DNI: "12345678"},
		{ID: "2", Nombre: "Bruno", DNI: "45678901"},
		{ID: "3", Nombre: "Carla", DNI: "78901234"},
	}
}

func TestPatientCacheRepository_CommitRefresh(t *testing.T) {
	t.Run("fresh commit replaces the cache", func(t *testing.T) {
		cache := NewPatientCacheRepository()
		assert.True(t, cache.CommitRefresh(cache.Version(), cacheFixture()))
		assert.Len(t, cache.All(), 3)
	})

	t.Run("stale commit applies nothing", func(t *testing.T) {
		cache := NewPatientCacheRepository()
		stale := cache.Version()
		cache.Upsert(responses.Patient{ID: "9", Nombre: "Diego", DNI: "99999999"})

		assert.False(t, cache.CommitRefresh(stale, cacheFixture()))
		all := cache.All()
		assert.Len(t, all, 1)
		assert.Equal(t, "Diego", all[0].Nombre)
	})

	t.Run("version moves on every committed mutation", func(t *testing.T) {
		cache := NewPatientCacheRepository()
		before := cache.Version()
		cache.CommitRefresh(before, cacheFixture())
		afterRefresh := cache.Version()
		assert.Greater(t, afterRefresh, before)

		cache.Remove("12345678")
		assert.Greater(t, cache.Version(), afterRefresh)
	})
}

func TestPatientCacheRepository_FilterByDNI(t *testing.T) {
	cache := NewPatientCacheRepository()
	cache.CommitRefresh(cache.Version(), cacheFixture())

	t.Run("empty filter returns everything", func(t *testing.T) {
		assert.Len(t, cache.FilterByDNI(""), 3)
	})

	t.Run("substring matches anywhere, order preserved", func(t *testing.T) {
		filtered := cache.FilterByDNI("4567")
		assert.Len(t, filtered, 2)
		assert.Equal(t, "Ana", filtered[0].Nombre)
		assert.Equal(t, "Bruno", filtered[1].Nombre)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, cache.FilterByDNI("000"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		filtered := cache.FilterByDNI("")
		filtered[0].Nombre = "mutated"
		assert.Equal(t, "Ana", cache.All()[0].Nombre)
	})
}

func TestPatientCacheRepository_Upsert(t *testing.T) {
	cache := NewPatientCacheRepository()
	cache.CommitRefresh(cache.Version(), cacheFixture())

	t.Run("known dni replaces in place", func(t *testing.T) {
		cache.Upsert(responses.Patient{ID: "2", Nombre: "Bruno Editado", DNI: "45678901"})
		all := cache.All()
		assert.Len(t, all, 3)
		assert.Equal(t, "Bruno Editado", all[1].Nombre)
	})

	t.Run("new dni appends", func(t *testing.T) {
		cache.Upsert(responses.Patient{ID: "4", Nombre: "Diego", DNI: "11112222"})
		all := cache.All()
		assert.Len(t, all, 4)
		assert.Equal(t, "Diego", all[3].Nombre)
	})
}

func TestPatientCacheRepository_Remove(t *testing.T) {
	cache := NewPatientCacheRepository()
	cache.CommitRefresh(cache.Version(), cacheFixture())

	t.Run("known dni removes", func(t *testing.T) {
		cache.Remove("45678901")
		assert.Len(t, cache.All(), 2)
	})

	t.Run("absent dni is a no-op", func(t *testing.T) {
		before := cache.Version()
		cache.Remove("00000000")
		assert.Len(t, cache.All(), 2)
		assert.Equal(t, before, cache.Version())
	})
}
