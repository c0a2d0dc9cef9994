package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"

	"headersearch/internal/domain"
)

//go:embed data/*.json
var seedFS embed.FS

// ErrUnknownFormat is returned for catalog files that are neither JSON nor TOML
var ErrUnknownFormat = errors.New("unknown catalog format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// tomlMachines is the TOML layout of a machines file: a list of [[machine]] tables
type tomlMachines struct {
	Machines []domain.MachineRecord `toml:"machine"`
}

// tomlProducts is the TOML layout of a products file: a list of [[product]] tables
type tomlProducts struct {
	Products []domain.ProductRecord `toml:"product"`
}

// LoadMachines reads machine records from a JSON array or a TOML file
func LoadMachines(path string) ([]domain.MachineRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machines file: %w", err)
	}

	switch format(path) {
	case "json":
		var machines []domain.MachineRecord
		if err := json.Unmarshal(data, &machines); err != nil {
			return nil, fmt.Errorf("failed to parse machines file %s: %w", path, err)
		}
		return machines, nil
	case "toml":
		var doc tomlMachines
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse machines file %s: %w", path, err)
		}
		return doc.Machines, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadProducts reads product records from a JSON array or a TOML file
func LoadProducts(path string) ([]domain.ProductRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	switch format(path) {
	case "json":
		var products []domain.ProductRecord
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to parse products file %s: %w", path, err)
		}
		return products, nil
	case "toml":
		var doc tomlProducts
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse products file %s: %w", path, err)
		}
		return doc.Products, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load builds a Store from the given files. An empty path falls back to the
// embedded seed data for that catalog.
func Load(machinesPath, productsPath string) (*Store, error) {
	seedMachines, seedProducts, err := Seed()
	if err != nil {
		return nil, err
	}

	machines := seedMachines
	if machinesPath != "" {
		if machines, err = LoadMachines(machinesPath); err != nil {
			return nil, err
		}
	}

	products := seedProducts
	if productsPath != "" {
		if products, err = LoadProducts(productsPath); err != nil {
			return nil, err
		}
	}

	return NewStore(machines, products), nil
}

// Seed returns the embedded demo catalogs
func Seed() ([]domain.MachineRecord, []domain.ProductRecord, error) {
	var machines []domain.MachineRecord
	data, err := seedFS.ReadFile("data/machines.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read seed machines: %w", err)
	}
	if err := json.Unmarshal(data, &machines); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed machines: %w", err)
	}

	var products []domain.ProductRecord
	data, err = seedFS.ReadFile("data/products.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read seed products: %w", err)
	}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, nil, fmt.Errorf("failed to parse seed products: %w", err)
	}

	return machines, products, nil
}

func format(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
