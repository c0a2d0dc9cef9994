package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"headersearch/internal/domain"
)

func TestNormalizeMachine(t *testing.T) {
	m := domain.MachineRecord{
		ID:           "m1",
		Name:         "CMS 530",
		Description:  "Rectilínea",
		Brand:        "STOLL",
		Category:     "Tejido",
		Type:         "Electrónica",
		Capabilities: []string{"Intarsia", "Jacquard"},
		Image:        "/img/m1.png",
	}

	text, proj := Normalize(m)

	assert.Equal(t, "cms 530 rectilínea stoll tejido electrónica intarsia jacquard", text)
	assert.Equal(t, domain.Projection{
		Title:       "CMS 530",
		Subtitle:    "STOLL - Tejido",
		Thumbnail:   "/img/m1.png",
		Destination: ListingDestination,
	}, proj)
}

func TestNormalizeProduct(t *testing.T) {
	p := domain.ProductRecord{
		ID:          "p1",
		Name:        "Agujas",
		Description: "Repuesto",
		Category:    "Repuestos",
		Features:    []string{"Galga 12"},
	}

	text, proj := Normalize(&p)

	assert.Equal(t, "agujas repuesto repuestos galga 12", text)
	assert.Equal(t, "Agujas", proj.Title)
	assert.Equal(t, "Repuestos", proj.Subtitle)
	assert.Equal(t, ListingDestination, proj.Destination)
}

func TestNormalizeMissingFieldsDegradeToEmpty(t *testing.T) {
	text, proj := Normalize(domain.MachineRecord{ID: "bare", Name: "Solo"})

	assert.Contains(t, text, "solo")
	assert.Equal(t, "Solo", proj.Title)
	assert.Equal(t, " - ", proj.Subtitle)
	assert.Empty(t, proj.Thumbnail)
}

func TestNormalizeNilAndUnknownRecords(t *testing.T) {
	var nilMachine *domain.MachineRecord
	text, proj := Normalize(nilMachine)
	assert.Empty(t, text)
	assert.Equal(t, domain.Projection{}, proj)

	text, proj = Normalize(nil)
	assert.Empty(t, text)
	assert.Equal(t, domain.Projection{}, proj)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "stoll", Fold("STOLL"))
	assert.Equal(t, "máquina", Fold("MÁQUINA"))
	assert.Equal(t, "", Fold(""))
}
