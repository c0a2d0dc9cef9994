//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const testMachines = `[
  {"id": "cms530", "name": "CMS 530 HP", "brand": "STOLL", "category": "Tejido Rectilíneo", "inStock": true},
  {"id": "ssr112", "name": "SSR112", "brand": "SHIMA SEIKI", "category": "Tejido Rectilíneo"}
]`

const testProducts = `[
  {"id": "agujas", "name": "Agujas de lengüeta", "category": "Repuestos", "features": ["Galga 12"]}
]`

// CreateTestWorkspace creates a temporary directory for config, catalog and log files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes the catalog files and a config pointing at them,
// returning the config path
func (tf *TUITestFramework) WriteCatalog(machines, products string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	catalogDir := filepath.Join(tf.workspace, "catalog")
	if err := os.MkdirAll(catalogDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(catalogDir, "machines.json"), []byte(machines), 0644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(catalogDir, "products.json"), []byte(products), 0644); err != nil {
		return "", err
	}

	configPath := filepath.Join(tf.workspace, "config.toml")
	config := fmt.Sprintf(`version = 1
log_file = %q

[catalog]
machines = "catalog/machines.json"
products = "catalog/products.json"

[ui]
watch_catalog = true
open_pages_in_pager = false
max_width = 100
`, filepath.Join(tf.workspace, "headersearch.log"))

	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		return "", err
	}
	return configPath, nil
}

// startWithCatalog creates a workspace with the default test catalog and starts the app
func (tf *TUITestFramework) startWithCatalog() (string, error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	configPath, err := tf.WriteCatalog(testMachines, testProducts)
	if err != nil {
		return "", err
	}
	return configPath, tf.StartApp("--config", configPath)
}
