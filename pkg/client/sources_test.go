package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLoadEmpty(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, registry.Sources)
	require.Empty(t, registry.List())
}

func TestRegistryAddGetRemove(t *testing.T) {
	root := t.TempDir()

	registry, err := LoadRegistry(root)
	require.NoError(t, err)

	require.NoError(t, registry.Add("havoc", "https://repo.host.dev", FormatAPT))

	source, err := registry.Get("havoc")
	require.NoError(t, err)
	require.Equal(t, "https://repo.host.dev", source.URL)
	require.Equal(t, FormatAPT, source.Format)
	require.True(t, source.LastFetched.IsZero())

	require.NoError(t, registry.Remove("havoc"))
	_, err = registry.Get("havoc")
	require.Error(t, err)
}

func TestRegistryAddDuplicate(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, registry.Add("main", "https://repo.host.dev", FormatJSON))
	require.Error(t, registry.Add("main", "https://other.host.dev", FormatJSON))
}

func TestRegistryAddBadFormat(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	require.NoError(t, err)

	require.Error(t, registry.Add("weird", "https://repo.host.dev", SourceFormat("xml")))
}

func TestRegistryRemoveMissing(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	require.NoError(t, err)

	require.Error(t, registry.Remove("absent"))
}

func TestRegistryPersistsAcrossLoads(t *testing.T) {
	root := t.TempDir()

	registry, err := LoadRegistry(root)
	require.NoError(t, err)
	require.NoError(t, registry.Add("main", "https://repo.host.dev", FormatJSON))
	require.NoError(t, registry.MarkFetched("main"))

	reloaded, err := LoadRegistry(root)
	require.NoError(t, err)

	source, err := reloaded.Get("main")
	require.NoError(t, err)
	require.Equal(t, "https://repo.host.dev", source.URL)
	require.False(t, source.LastFetched.IsZero())
}

func TestRegistryListSorted(t *testing.T) {
	registry, err := LoadRegistry(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, registry.Add(name, "https://repo.host.dev/"+name, FormatJSON))
	}

	list := registry.List()
	require.Len(t, list, 3)
	require.Equal(t, "alpha", list[0].Name)
	require.Equal(t, "mid", list[1].Name)
	require.Equal(t, "zeta", list[2].Name)
}
