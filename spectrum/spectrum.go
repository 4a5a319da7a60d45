// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package spectrum

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/poiesic/voto/core"
)

// Axis bounds.
const (
	MinCoordinate = -5
	MaxCoordinate = 5
)

// Color is a display hint; rendering decides what it looks like.
type Color string

const (
	Red     Color = "red"
	Magenta Color = "magenta"
	Green   Color = "green"
	Blue    Color = "blue"
	Cyan    Color = "cyan"
	Yellow  Color = "yellow"
	White   Color = "white"
)

// Entry is one party's fixed position.
type Entry struct {
	Code        string
	Economic    int
	Social      int
	Label       string
	Description string
	Color       Color
}

// Table lists every party in declaration order.
var Table = []Entry{
	{"FA", -4, -4, "Izquierda progresista", "Estado activo, derechos sociales, igualdad de género, medio ambiente", Red},
	{"PDLCT", -4, -3, "Izquierda", "Derechos laborales, sindicalismo, justicia social", Red},

	{"CAC", -2, -3, "Centro-izquierda progresista", "Progresista, medio ambiente, políticas de género, desarrollo sostenible", Magenta},
	{"UP", -2, -2, "Centro-izquierda", "Bienestar social, salud, derechos de la mujer", Magenta},
	{"PSD", -1, -1, "Socialdemocracia", "Estado de bienestar, educación, salud pública", Magenta},
	{"PJSC", -2, -1, "Centro-izquierda social", "Justicia social, protección de trabajadores", Magenta},

	{"PLN", 0, 0, "Centro pragmático", "Tradición socialdemócrata, pragmatismo, infraestructura", Green},
	{"PPSO", 0, 1, "Centro independiente", "Anti-corrupción, soberanía nacional, independiente", Green},
	{"CDS", 1, 0, "Centro", "Ciudadanía activa, transparencia, eficiencia", Green},

	{"PUSC", 2, 1, "Centro-derecha liberal", "Libre mercado, reducción del Estado, educación", Blue},
	{"PA", 3, 1, "Centro-derecha empresarial", "Pro-empresa, pymes, desarrollo económico", Blue},
	{"PIN", 2, 2, "Centro-derecha", "Integración, desarrollo, valores tradicionales", Blue},

	{"PLP", 4, 0, "Derecha liberal", "Liberalismo clásico, reducción de impuestos, Estado mínimo", Cyan},
	{"CR1", 3, 2, "Derecha", "Nacionalismo cívico, seguridad, desarrollo", Cyan},

	{"PNR", 2, 4, "Derecha conservadora", "Valores tradicionales, familia, seguridad, fe", Yellow},
	{"PNG", 3, 4, "Derecha nacionalista", "Nacionalismo, soberanía, valores tradicionales", Yellow},
	{"ACRM", 2, 3, "Derecha populista", "Soberanía popular, anti-establishment", Yellow},

	{"PEN", 1, 2, "Centro-derecha popular", "Populismo, anti-élite, pueblo primero", White},
	{"PEL", 0, 1, "Centro", "Propuestas variadas, desarrollo local", White},
	{"PUCD", 1, 1, "Centro-derecha", "Unión democrática, desarrollo", White},
}

// Lookup resolves a party code case-insensitively.
func Lookup(code string) (Entry, error) {
	want := strings.ToUpper(strings.TrimSpace(code))
	for _, e := range Table {
		if e.Code == want {
			return e, nil
		}
	}
	return Entry{}, &core.UnknownCodeError{Code: code, Err: ErrUnknownParty}
}

// ByEconomic returns the table sorted by economic coordinate. Parties at the
// same coordinate keep declaration order.
func ByEconomic() []Entry {
	sorted := slices.Clone(Table)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Economic, b.Economic)
	})
	return sorted
}

// Bucket range of the one-dimensional layout.
const (
	FirstBucket = -4
	LastBucket  = 4
)

// Bucket holds the parties drawn at one position of the layout.
type Bucket struct {
	Position int
	Entries  []Entry
}

// Buckets lays the parties out along the economic axis in nine positions,
// FirstBucket through LastBucket. Coordinates beyond either end are clamped
// into the edge bucket so every party is drawn.
func Buckets() []Bucket {
	buckets := make([]Bucket, LastBucket-FirstBucket+1)
	for i := range buckets {
		buckets[i].Position = FirstBucket + i
	}
	for _, e := range ByEconomic() {
		pos := min(max(e.Economic, FirstBucket), LastBucket)
		b := &buckets[pos-FirstBucket]
		b.Entries = append(b.Entries, e)
	}
	return buckets
}

// Group is a named economic range used by the detailed view.
type Group struct {
	Name    string
	Low     int
	High    int
	Color   Color
	Entries []Entry
}

var groupRanges = []Group{
	{Name: "Izquierda", Low: -5, High: -3, Color: Red},
	{Name: "Centro-izquierda", Low: -2, High: -1, Color: Magenta},
	{Name: "Centro", Low: 0, High: 0, Color: Green},
	{Name: "Centro-derecha", Low: 1, High: 2, Color: Blue},
	{Name: "Derecha", Low: 3, High: 5, Color: Cyan},
}

// Groups returns the non-empty economic groups from left to right, each with
// its parties sorted by economic coordinate.
func Groups() []Group {
	sorted := ByEconomic()
	var groups []Group
	for _, g := range groupRanges {
		for _, e := range sorted {
			if e.Economic >= g.Low && e.Economic <= g.High {
				g.Entries = append(g.Entries, e)
			}
		}
		if len(g.Entries) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Distance is the Euclidean distance between two positions, rounded to one decimal.
func Distance(a, b Entry) float64 {
	d := math.Hypot(float64(a.Economic-b.Economic), float64(a.Social-b.Social))
	return math.Round(d*10) / 10
}

// Band classifies an ideological distance.
type Band int

const (
	VeryClose Band = iota
	RelativelyClose
	ModerateDifferences
	VeryDifferent
)

// BandFor classifies a rounded distance.
func BandFor(distance float64) Band {
	switch {
	case distance < 2:
		return VeryClose
	case distance < 4:
		return RelativelyClose
	case distance < 6:
		return ModerateDifferences
	default:
		return VeryDifferent
	}
}

func (b Band) String() string {
	switch b {
	case VeryClose:
		return "Muy cercanos ideológicamente"
	case RelativelyClose:
		return "Relativamente cercanos"
	case ModerateDifferences:
		return "Diferencias moderadas"
	default:
		return "Posiciones muy distintas"
	}
}

// Comparison is the result of comparing two parties.
type Comparison struct {
	Left     Entry
	Right    Entry
	Distance float64
	Band     Band
}

// Compare looks up both parties and measures how far apart they are.
// An unknown code aborts the comparison.
func Compare(left, right string) (*Comparison, error) {
	l, err := Lookup(left)
	if err != nil {
		return nil, err
	}
	r, err := Lookup(right)
	if err != nil {
		return nil, err
	}
	d := Distance(l, r)
	return &Comparison{Left: l, Right: r, Distance: d, Band: BandFor(d)}, nil
}

// AxisOffset maps a coordinate to a cell index 0..10 on a drawn axis.
func AxisOffset(v int) int {
	return min(max(v, MinCoordinate), MaxCoordinate) - MinCoordinate
}
