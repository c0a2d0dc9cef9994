package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"headersearch/internal/domain"
)

// ListingDestination is where machine and product rows navigate to
const ListingDestination = "/maquinas"

// fieldSeparator joins the fields of a searchable text blob
const fieldSeparator = " "

// Fold case-folds s for case-insensitive comparison.
// A Caser keeps internal state, so a fresh one is used per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Normalize converts a catalog record into its searchable text and display projection.
// Unknown record types yield an empty text and projection.
func Normalize(record domain.CatalogRecord) (string, domain.Projection) {
	switch r := record.(type) {
	case domain.MachineRecord:
		return NormalizeMachine(r)
	case *domain.MachineRecord:
		if r == nil {
			return "", domain.Projection{}
		}
		return NormalizeMachine(*r)
	case domain.ProductRecord:
		return NormalizeProduct(r)
	case *domain.ProductRecord:
		if r == nil {
			return "", domain.Projection{}
		}
		return NormalizeProduct(*r)
	default:
		return "", domain.Projection{}
	}
}

// NormalizeMachine builds the searchable text and projection for a machine
func NormalizeMachine(m domain.MachineRecord) (string, domain.Projection) {
	fields := make([]string, 0, 5+len(m.Capabilities))
	fields = append(fields, m.Name, m.Description, m.Brand, m.Category, m.Type)
	fields = append(fields, m.Capabilities...)

	return searchableText(fields), domain.Projection{
		Title:       m.Name,
		Subtitle:    m.Brand + " - " + m.Category,
		Thumbnail:   m.Image,
		Destination: ListingDestination,
	}
}

// NormalizeProduct builds the searchable text and projection for a product
func NormalizeProduct(p domain.ProductRecord) (string, domain.Projection) {
	fields := make([]string, 0, 3+len(p.Features))
	fields = append(fields, p.Name, p.Description, p.Category)
	fields = append(fields, p.Features...)

	return searchableText(fields), domain.Projection{
		Title:       p.Name,
		Subtitle:    p.Category,
		Thumbnail:   p.Image,
		Destination: ListingDestination,
	}
}

func searchableText(fields []string) string {
	return Fold(strings.Join(fields, fieldSeparator))
}
