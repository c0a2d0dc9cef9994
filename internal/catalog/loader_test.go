package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSeedCatalog(t *testing.T) {
	machines, products, err := Seed()
	require.NoError(t, err)
	require.NotEmpty(t, machines)
	require.NotEmpty(t, products)

	ids := make(map[string]bool)
	for _, m := range machines {
		assert.False(t, ids[m.ID], "duplicate machine id %s", m.ID)
		ids[m.ID] = true
	}
}

func TestLoadMachinesJSON(t *testing.T) {
	path := writeFile(t, "machines.json", `[
		{"id": "m1", "name": "CMS", "brand": "STOLL", "capabilities": ["Intarsia"], "inStock": true}
	]`)

	machines, err := LoadMachines(path)
	require.NoError(t, err)
	require.Len(t, machines, 1)
	assert.Equal(t, "STOLL", machines[0].Brand)
	assert.Equal(t, []string{"Intarsia"}, machines[0].Capabilities)
	require.NotNil(t, machines[0].InStock)
	assert.True(t, *machines[0].InStock)
}

func TestLoadProductsTOML(t *testing.T) {
	path := writeFile(t, "products.toml", `
[[product]]
id = "p1"
name = "Platinas"
category = "Repuestos"
features = ["Compatible STOLL"]

[[product]]
id = "p2"
name = "Aceite"
`)

	products, err := LoadProducts(path)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Platinas", products[0].Name)
	assert.Equal(t, []string{"Compatible STOLL"}, products[0].Features)
	assert.Empty(t, products[1].Features)
}

func TestLoadUnknownFormat(t *testing.T) {
	path := writeFile(t, "machines.csv", "id,name")

	_, err := LoadMachines(path)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFile(t, "products.json", `{not json`)

	_, err := LoadProducts(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToSeed(t *testing.T) {
	productsPath := writeFile(t, "products.json", `[{"id": "only", "name": "Only product"}]`)

	s, err := Load("", productsPath)
	require.NoError(t, err)

	seedMachines, _, err := Seed()
	require.NoError(t, err)
	assert.Len(t, s.Machines(), len(seedMachines))
	require.Len(t, s.Products(), 1)
	assert.Equal(t, "only", s.Products()[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}
