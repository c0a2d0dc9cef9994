package catalog

import (
	"headersearch/internal/domain"
)

// Entry is a catalog record with its searchable text computed once at load time
type Entry struct {
	ID         string
	Text       string
	Projection domain.Projection
}

// Store holds both catalogs, read-only after construction.
// A reload means building a new Store.
type Store struct {
	machines       []domain.MachineRecord
	products       []domain.ProductRecord
	machineEntries []Entry
	productEntries []Entry
}

// NewStore normalizes every record and keeps the catalog order
func NewStore(machines []domain.MachineRecord, products []domain.ProductRecord) *Store {
	s := &Store{
		machines:       append([]domain.MachineRecord(nil), machines...),
		products:       append([]domain.ProductRecord(nil), products...),
		machineEntries: make([]Entry, 0, len(machines)),
		productEntries: make([]Entry, 0, len(products)),
	}

	for _, m := range s.machines {
		text, proj := NormalizeMachine(m)
		s.machineEntries = append(s.machineEntries, Entry{ID: m.ID, Text: text, Projection: proj})
	}
	for _, p := range s.products {
		text, proj := NormalizeProduct(p)
		s.productEntries = append(s.productEntries, Entry{ID: p.ID, Text: text, Projection: proj})
	}

	return s
}

// Machines returns the machine records in catalog order
func (s *Store) Machines() []domain.MachineRecord {
	return s.machines
}

// Products returns the product records in catalog order
func (s *Store) Products() []domain.ProductRecord {
	return s.products
}

// MachineEntries returns the normalized machines in catalog order
func (s *Store) MachineEntries() []Entry {
	return s.machineEntries
}

// ProductEntries returns the normalized products in catalog order
func (s *Store) ProductEntries() []Entry {
	return s.productEntries
}

// GetMachine looks up a machine by identifier
func (s *Store) GetMachine(id string) (domain.MachineRecord, bool) {
	for _, m := range s.machines {
		if m.ID == id {
			return m, true
		}
	}
	return domain.MachineRecord{}, false
}

// GetProduct looks up a product by identifier
func (s *Store) GetProduct(id string) (domain.ProductRecord, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.ProductRecord{}, false
}

// Brands returns the distinct machine brands in first-seen order
func (s *Store) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, m := range s.machines {
		if m.Brand == "" || seen[m.Brand] {
			continue
		}
		seen[m.Brand] = true
		brands = append(brands, m.Brand)
	}
	return brands
}

// Len returns the number of machines and products
func (s *Store) Len() (machines, products int) {
	return len(s.machines), len(s.products)
}
