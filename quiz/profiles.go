package quiz

import "slices"

// EconomicApproach is the economic stance a candidate declares, or a voter picks.
type EconomicApproach string

const (
	Mercado     EconomicApproach = "mercado"
	Estado      EconomicApproach = "estado"
	Balance     EconomicApproach = "balance"
	Tradicional EconomicApproach = "tradicional"
)

// Profile is hand-curated quiz data for one candidate.
type Profile struct {
	Code      string
	Name      string
	Strengths []CategoryID
	Approach  EconomicApproach
	Summary   string
	Keywords  []string
}

// HasStrength reports whether the candidate emphasises the category.
func (p Profile) HasStrength(id CategoryID) bool {
	return slices.Contains(p.Strengths, id)
}

// ProfileTable is an ordered, read-only set of profiles keyed by candidate code.
// Its order breaks ties in the ranking.
type ProfileTable struct {
	profiles []Profile
	index    map[string]int
}

// NewProfileTable builds a table. A repeated code keeps its first position and
// its last definition.
func NewProfileTable(profiles ...Profile) *ProfileTable {
	t := &ProfileTable{index: make(map[string]int, len(profiles))}
	for _, p := range profiles {
		if i, ok := t.index[p.Code]; ok {
			t.profiles[i] = p
			continue
		}
		t.index[p.Code] = len(t.profiles)
		t.profiles = append(t.profiles, p)
	}
	return t
}

// Lookup returns the profile for a candidate code.
func (t *ProfileTable) Lookup(code string) (Profile, bool) {
	i, ok := t.index[code]
	if !ok {
		return Profile{}, false
	}
	return t.profiles[i], true
}

// All returns the profiles in table order.
func (t *ProfileTable) All() []Profile {
	return slices.Clone(t.profiles)
}

// Len returns the number of profiles.
func (t *ProfileTable) Len() int {
	return len(t.profiles)
}

// DefaultProfiles returns the curated profiles of the ten main candidates.
func DefaultProfiles() *ProfileTable {
	return NewProfileTable(
		Profile{
			Code:      "PLN",
			Name:      "Álvaro Ramos",
			Strengths: []CategoryID{Salud, Infraestructura, Agro},
			Approach:  Balance,
			Summary:   "Experiencia en gobierno, enfoque en salud y CCSS, infraestructura",
			Keywords:  []string{"Caja", "salud", "infraestructura", "agua", "turismo"},
		},
		Profile{
			Code:      "PUSC",
			Name:      "Juan Carlos Hidalgo",
			Strengths: []CategoryID{Economia, Educacion, Seguridad},
			Approach:  Mercado,
			Summary:   "Liberal clásico, reducción del Estado, énfasis en educación y empleo",
			Keywords:  []string{"impuestos", "fiscal", "educación", "empleo", "seguridad"},
		},
		Profile{
			Code:      "CAC",
			Name:      "Claudia Dobles",
			Strengths: []CategoryID{Ambiente, Social, Genero},
			Approach:  Estado,
			Summary:   "Progresista, medio ambiente, igualdad de género, bienestar social",
			Keywords:  []string{"ambiente", "mujeres", "social", "educación", "cambio climático"},
		},
		Profile{
			Code:      "FA",
			Name:      "Ariel Robles",
			Strengths: []CategoryID{Social, Genero, Educacion},
			Approach:  Estado,
			Summary:   "Izquierda progresista, derechos sociales, igualdad, educación pública",
			Keywords:  []string{"social", "mujeres", "educación", "jóvenes", "trabajo"},
		},
		Profile{
			Code:      "PLP",
			Name:      "Eliécer Feinzaig",
			Strengths: []CategoryID{Economia, Seguridad, Infraestructura},
			Approach:  Mercado,
			Summary:   "Liberal, reducción de impuestos, eficiencia estatal, seguridad",
			Keywords:  []string{"impuestos", "fiscal", "empleo", "seguridad", "tecnología"},
		},
		Profile{
			Code:      "PNR",
			Name:      "Fabricio Alvarado",
			Strengths: []CategoryID{Seguridad, Genero, Social},
			Approach:  Tradicional,
			Summary:   "Conservador, valores tradicionales, familia, seguridad",
			Keywords:  []string{"familia", "seguridad", "social", "educación"},
		},
		Profile{
			Code:      "UP",
			Name:      "Natalia Díaz",
			Strengths: []CategoryID{Social, Salud, Genero},
			Approach:  Estado,
			Summary:   "Progresista, bienestar social, salud, igualdad de género",
			Keywords:  []string{"social", "mujeres", "salud", "pensiones", "jóvenes"},
		},
		Profile{
			Code:      "PPSO",
			Name:      "Laura Fernández",
			Strengths: []CategoryID{Social, Seguridad, Economia},
			Approach:  Balance,
			Summary:   "Independiente, lucha anticorrupción, bienestar social",
			Keywords:  []string{"corrupción", "social", "seguridad", "empleo"},
		},
		Profile{
			Code:      "PA",
			Name:      "José Aguilar",
			Strengths: []CategoryID{Economia, Agro, Infraestructura},
			Approach:  Mercado,
			Summary:   "Empresarial, apoyo a pymes, desarrollo económico",
			Keywords:  []string{"empresas", "pymes", "empleo", "economía"},
		},
		Profile{
			Code:      "PSD",
			Name:      "Luz Mary Alpízar",
			Strengths: []CategoryID{Social, Salud, Educacion},
			Approach:  Estado,
			Summary:   "Socialdemócrata, bienestar social, salud, educación",
			Keywords:  []string{"social", "salud", "educación", "pensiones"},
		},
	)
}
