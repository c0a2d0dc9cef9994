package domain

// Category identifies which partition a search result belongs to
type Category string

const (
	CategoryMachine Category = "machine"
	CategoryProduct Category = "product"
	CategoryPage    Category = "page"
)

// Categories lists every category in dropdown display order
var Categories = []Category{CategoryMachine, CategoryProduct, CategoryPage}

// Label returns the heading shown above a category's rows
func (c Category) Label() string {
	switch c {
	case CategoryMachine:
		return "Máquinas"
	case CategoryProduct:
		return "Productos"
	case CategoryPage:
		return "Páginas"
	default:
		return string(c)
	}
}

// CatalogRecord is either a MachineRecord or a ProductRecord
type CatalogRecord interface {
	RecordID() string
	RecordCategory() Category
}

// MachineRecord represents an industrial machine in the catalog
type MachineRecord struct {
	ID           string   `json:"id" toml:"id"`
	Name         string   `json:"name" toml:"name"`
	Description  string   `json:"description" toml:"description"`
	Brand        string   `json:"brand" toml:"brand"`
	Category     string   `json:"category" toml:"category"`
	Type         string   `json:"type" toml:"type"`
	Capabilities []string `json:"capabilities" toml:"capabilities"`
	Image        string   `json:"image" toml:"image"`
	InStock      *bool    `json:"inStock,omitempty" toml:"inStock,omitempty"`
}

func (m MachineRecord) RecordID() string         { return m.ID }
func (m MachineRecord) RecordCategory() Category { return CategoryMachine }

// ProductRecord represents a product (accessory, spare part, offer) in the catalog
type ProductRecord struct {
	ID          string   `json:"id" toml:"id"`
	Name        string   `json:"name" toml:"name"`
	Description string   `json:"description" toml:"description"`
	Category    string   `json:"category" toml:"category"`
	Features    []string `json:"features" toml:"features"`
	Image       string   `json:"image" toml:"image"`
	InStock     *bool    `json:"inStock,omitempty" toml:"inStock,omitempty"`
}

func (p ProductRecord) RecordID() string         { return p.ID }
func (p ProductRecord) RecordCategory() Category { return CategoryProduct }

// Projection is the display-ready view of a catalog record
type Projection struct {
	Title       string
	Subtitle    string
	Thumbnail   string
	Destination string
}

// NavigationTarget is a navigable page plus the keywords that suggest it
type NavigationTarget struct {
	Destination string
	Label       string
	Keywords    []string
}

// SearchResult is a single dropdown row
type SearchResult struct {
	Category    Category
	SourceID    string
	Title       string
	Subtitle    string // empty for pages
	Thumbnail   string // empty for pages
	Destination string
}

// Key identifies a result within one result set
func (r SearchResult) Key() string {
	return string(r.Category) + ":" + r.SourceID
}
