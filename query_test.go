package sensei_test

import (
	"testing"

	"github.com/fwojciec/sensei"
	"github.com/stretchr/testify/assert"
)

func TestNewQuery(t *testing.T) {
	t.Parallel()

	t.Run("std sentinel selects standard library", func(t *testing.T) {
		t.Parallel()

		q := sensei.NewQuery(sensei.Intent{Name: "STD"})

		assert.Equal(t, sensei.SourceStd, q.Source.Kind)
		assert.Equal(t, "std", q.Source.Name)
	})

	t.Run("std wins over local flag", func(t *testing.T) {
		t.Parallel()

		q := sensei.NewQuery(sensei.Intent{Name: "std", Local: true, Version: "1.60.0"})

		assert.Equal(t, sensei.SourceStd, q.Source.Kind)
		assert.Empty(t, q.Warning)
	})

	t.Run("local flag selects local source", func(t *testing.T) {
		t.Parallel()

		q := sensei.NewQuery(sensei.Intent{Name: "serde", Local: true})

		assert.Equal(t, sensei.SourceLocal, q.Source.Kind)
		assert.Empty(t, q.Warning)
	})

	t.Run("defaults to registry", func(t *testing.T) {
		t.Parallel()

		q := sensei.NewQuery(sensei.Intent{Name: "tokio"})

		assert.Equal(t, sensei.SourceRegistry, q.Source.Kind)
		assert.Equal(t, "tokio", q.Source.Name)
	})

	t.Run("normalizes name", func(t *testing.T) {
		t.Parallel()

		upper := sensei.NewQuery(sensei.Intent{Name: "Serde", Version: "1.0.0"})
		lower := sensei.NewQuery(sensei.Intent{Name: "serde", Version: "1.0.0"})

		assert.Equal(t, lower.Source, upper.Source)

		r := &sensei.Resolver{Hosts: sensei.DefaultHosts(), BaseDir: "/work"}
		assert.Equal(t, r.Resolve(lower), r.Resolve(upper))
	})
}

func TestNewQuery_WarningOnlyForLocalWithVersionOrSearch(t *testing.T) {
	t.Parallel()

	for _, local := range []bool{false, true} {
		for _, version := range []string{"", "1.0.0"} {
			for _, search := range []string{"", "Serializer"} {
				q := sensei.NewQuery(sensei.Intent{
					Name:    "serde",
					Version: version,
					Search:  search,
					Local:   local,
				})

				want := q.Source.Kind == sensei.SourceLocal && (q.Version != "" || q.Search != "")
				assert.Equal(t, want, q.Warning != "",
					"local=%v version=%q search=%q", local, version, search)
			}
		}
	}
}

func TestSourceKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "registry", sensei.SourceRegistry.String())
	assert.Equal(t, "std", sensei.SourceStd.String())
	assert.Equal(t, "local", sensei.SourceLocal.String())
	assert.Equal(t, "SourceKind(42)", sensei.SourceKind(42).String())
}
