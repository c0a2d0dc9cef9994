package views

import (
	"fmt"
	"strings"

	"headersearch/internal/catalog"
	"headersearch/internal/domain"
)

// Brand describes an entry on the brands page
type Brand struct {
	Name        string
	Description string
	Specialties []string
}

// Brands lists the represented brands in display order
var Brands = []Brand{
	{
		Name:        "PROTTI",
		Description: "Máquinas industriales italianas de alta precisión",
		Specialties: []string{"Máquinas de coser industriales", "Equipos de alta velocidad", "Tecnología italiana"},
	},
	{
		Name:        "SHIMA SEIKI",
		Description: "Líder mundial en máquinas de tejido japonesas",
		Specialties: []string{"Máquinas de tejido", "Tecnología japonesa", "Automatización avanzada"},
	},
	{
		Name:        "Steiger ZAMARK",
		Description: "Tecnología de costura avanzada y soluciones industriales",
		Specialties: []string{"Costura industrial", "Soluciones automatizadas", "Equipos especializados"},
	},
	{
		Name:        "STOLL",
		Description: "Máquinas de punto alemanas de última generación",
		Specialties: []string{"Máquinas de punto", "Tecnología alemana", "Sistemas CAD/CAM"},
	},
}

// PageRenderer renders the body of each destination page
type PageRenderer struct {
	styles *Styles
}

func NewPageRenderer(styles *Styles) *PageRenderer {
	return &PageRenderer{styles: styles}
}

// Title returns the label of destination in targets, or the destination itself
func Title(destination string, targets []domain.NavigationTarget) string {
	for _, t := range targets {
		if t.Destination == destination {
			return t.Label
		}
	}
	return destination
}

// Render returns the page content for destination
func (r *PageRenderer) Render(destination string, targets []domain.NavigationTarget, store *catalog.Store) string {
	var b strings.Builder
	b.WriteString(r.styles.PageTitle.Render(Title(destination, targets)))
	b.WriteString("\n\n")

	switch destination {
	case "":
		r.renderHome(&b)
	case "/maquinas":
		r.renderMachines(&b, store)
	case "/marcas":
		r.renderBrands(&b, store)
	case "/cotizar":
		r.renderQuote(&b)
	case "/nosotros":
		r.renderAbout(&b)
	default:
		b.WriteString(r.styles.Dim.Render("Página no encontrada."))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *PageRenderer) renderHome(b *strings.Builder) {
	b.WriteString("Reacondicionamiento y venta de máquinas de tejer desde 1964.\n\n")
	b.WriteString(r.styles.Dim.Render("Pulsa / para buscar máquinas, repuestos o secciones."))
	b.WriteString("\n")
}

func (r *PageRenderer) renderMachines(b *strings.Builder, store *catalog.Store) {
	if store == nil || len(store.Machines()) == 0 {
		b.WriteString(r.styles.Dim.Render("No hay máquinas en el catálogo."))
		b.WriteString("\n")
		return
	}

	for _, m := range store.Machines() {
		b.WriteString(r.styles.Section.Render(m.Name))
		if m.Brand != "" {
			b.WriteString("  ")
			b.WriteString(r.styles.Label.Render(m.Brand))
		}
		b.WriteString("\n")
		if m.Category != "" || m.Type != "" {
			b.WriteString("  ")
			b.WriteString(strings.TrimSpace(m.Category + " " + m.Type))
			b.WriteString("\n")
		}
		if m.Description != "" {
			b.WriteString("  ")
			b.WriteString(m.Description)
			b.WriteString("\n")
		}
		for _, c := range m.Capabilities {
			b.WriteString("  • ")
			b.WriteString(c)
			b.WriteString("\n")
		}
		if m.InStock != nil {
			b.WriteString("  ")
			b.WriteString(r.stock(*m.InStock))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if products := store.Products(); len(products) > 0 {
		b.WriteString(r.styles.PageTitle.Render("Repuestos y accesorios"))
		b.WriteString("\n\n")
		for _, p := range products {
			b.WriteString(fmt.Sprintf("%s  %s\n", r.styles.Section.Render(p.Name), r.styles.Dim.Render(p.Category)))
			if p.Description != "" {
				b.WriteString("  ")
				b.WriteString(p.Description)
				b.WriteString("\n")
			}
			if p.InStock != nil {
				b.WriteString("  ")
				b.WriteString(r.stock(*p.InStock))
				b.WriteString("\n")
			}
		}
	}
}

func (r *PageRenderer) stock(inStock bool) string {
	if inStock {
		return r.styles.InStock.Render("En stock")
	}
	return r.styles.OutOfStock.Render("Consultar disponibilidad")
}

func (r *PageRenderer) renderBrands(b *strings.Builder, store *catalog.Store) {
	counts := make(map[string]int)
	if store != nil {
		for _, m := range store.Machines() {
			counts[catalog.Fold(m.Brand)]++
		}
	}

	for _, brand := range Brands {
		b.WriteString(r.styles.Section.Render(brand.Name))
		if n := counts[catalog.Fold(brand.Name)]; n > 0 {
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  %d en catálogo", n)))
		}
		b.WriteString("\n  ")
		b.WriteString(brand.Description)
		b.WriteString("\n")
		for _, s := range brand.Specialties {
			b.WriteString("  • ")
			b.WriteString(s)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (r *PageRenderer) renderQuote(b *strings.Builder) {
	b.WriteString("Obtén una cotización personalizada para tus necesidades industriales.\n\n")
	steps := []string{
		"Elige las máquinas o repuestos que te interesan",
		"Cuéntanos sobre tu producción",
		"Déjanos tus datos de contacto",
	}
	for i, s := range steps {
		b.WriteString(fmt.Sprintf("  %s %s\n", r.styles.Label.Render(fmt.Sprintf("%d.", i+1)), s))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.InStock.Render("✓ Cotización sin compromiso"))
	b.WriteString("\n")
	b.WriteString(r.styles.InStock.Render("✓ Respuesta en 24 horas"))
	b.WriteString("\n")
}

func (r *PageRenderer) renderAbout(b *strings.Builder) {
	b.WriteString(r.styles.Section.Render("Nuestra Historia"))
	b.WriteString("\n")
	b.WriteString("Larsen Italiana comenzó en 1964 de la mano de su fundador, el Sr. Larsen Dick Eduard,\n")
	b.WriteString("de origen sueco. Desde entonces, hemos sido líderes en reacondicionamiento de máquinas\n")
	b.WriteString("de tejer de segunda mano.\n\n")

	b.WriteString(r.styles.Section.Render("Nuestro Recorrido"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.Label.Render("1964"), "Fundación de Larsen Italiana"))
	b.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.Label.Render("Hoy "), "Relaciones duraderas con las mejores marcas del mercado textil"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Textil · Tejido de punto · Segunda mano · Máquinas de tejer · Moda"))
	b.WriteString("\n")
}
