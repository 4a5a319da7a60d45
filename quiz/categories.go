package quiz

// CategoryID identifies a quiz category.
type CategoryID string

const (
	Economia        CategoryID = "economia"
	Social          CategoryID = "social"
	Salud           CategoryID = "salud"
	Educacion       CategoryID = "educacion"
	Seguridad       CategoryID = "seguridad"
	Ambiente        CategoryID = "ambiente"
	Genero          CategoryID = "genero"
	Infraestructura CategoryID = "infraestructura"
	Agro            CategoryID = "agro"
)

// Category groups topic keywords under a label a voter would recognise.
type Category struct {
	ID          CategoryID
	Name        string
	Topics      []string
	Description string
}

// Categories lists every category in display order.
var Categories = []Category{
	{
		ID:          Economia,
		Name:        "Economía y Empleo",
		Topics:      []string{"economía", "empleo", "trabajo", "pymes", "empresas", "impuestos", "fiscal", "deuda", "inflación"},
		Description: "Generación de empleo, crecimiento económico, apoyo a empresas",
	},
	{
		ID:          Social,
		Name:        "Bienestar Social",
		Topics:      []string{"social", "pobreza", "desigualdad", "pensiones", "vivienda"},
		Description: "Reducción de pobreza, programas sociales, pensiones",
	},
	{
		ID:          Salud,
		Name:        "Salud Pública",
		Topics:      []string{"salud", "Caja", "CCSS"},
		Description: "Sistema de salud, CCSS, acceso a servicios médicos",
	},
	{
		ID:          Educacion,
		Name:        "Educación",
		Topics:      []string{"educación", "jóvenes", "juventud", "niñez"},
		Description: "Calidad educativa, oportunidades para jóvenes",
	},
	{
		ID:          Seguridad,
		Name:        "Seguridad Ciudadana",
		Topics:      []string{"seguridad", "corrupción"},
		Description: "Combate al crimen, lucha anticorrupción",
	},
	{
		ID:          Ambiente,
		Name:        "Medio Ambiente",
		Topics:      []string{"ambiente", "medio ambiente", "cambio climático", "agua"},
		Description: "Protección ambiental, recursos naturales, sostenibilidad",
	},
	{
		ID:          Genero,
		Name:        "Género y Familia",
		Topics:      []string{"mujeres", "género", "familia"},
		Description: "Igualdad de género, protección familiar",
	},
	{
		ID:          Infraestructura,
		Name:        "Infraestructura",
		Topics:      []string{"infraestructura", "carreteras", "tecnología", "digitalización"},
		Description: "Obras públicas, modernización, conectividad",
	},
	{
		ID:          Agro,
		Name:        "Agricultura y Campo",
		Topics:      []string{"agricultura", "agro", "campo", "turismo"},
		Description: "Apoyo al agro, desarrollo rural, turismo",
	},
}

// LookupCategory finds a category by ID.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// TopicMentions sums a candidate's mentions of every topic in the category.
// Topics the candidate never mentions count as zero.
func (c Category) TopicMentions(totals map[string]int) int {
	sum := 0
	for _, topic := range c.Topics {
		sum += totals[topic]
	}
	return sum
}
