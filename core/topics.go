package core

// Topics is the fixed set of political keywords whose mentions are counted per document.
// Matching is case-insensitive substring matching, so "ambiente" also counts the
// occurrences inside "medio ambiente".
var Topics = []string{
	"educación", "salud", "empleo", "trabajo", "seguridad", "corrupción",
	"economía", "impuestos", "fiscal", "deuda", "inflación",
	"ambiente", "medio ambiente", "cambio climático", "agua",
	"vivienda", "infraestructura", "carreteras",
	"pensiones", "CCSS", "Caja",
	"tecnología", "digitalización", "internet",
	"mujeres", "género", "familia",
	"jóvenes", "juventud", "niñez",
	"pobreza", "desigualdad", "social",
	"agricultura", "agro", "campo",
	"turismo", "pymes", "empresas",
}

// IsTopic reports whether the keyword is part of the tracked topic set.
func IsTopic(keyword string) bool {
	for _, t := range Topics {
		if t == keyword {
			return true
		}
	}
	return false
}
