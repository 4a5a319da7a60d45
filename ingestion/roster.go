package ingestion

import (
	"slices"

	"github.com/poiesic/voto/core"
)

var roster = []core.Candidate{
	{Code: "PLN", Name: "Álvaro Ramos Chaves", Party: "Partido Liberación Nacional"},
	{Code: "PUSC", Name: "Juan Carlos Hidalgo Bogantes", Party: "Partido Unidad Social Cristiana"},
	{Code: "CAC", Name: "Claudia Dobles Camargo", Party: "Coalición Acción Ciudadana"},
	{Code: "FA", Name: "Ariel Robles Barrantes", Party: "Frente Amplio"},
	{Code: "PLP", Name: "Eliécer Feinzaig Mintz", Party: "Partido Liberal Progresista"},
	{Code: "PNR", Name: "Fabricio Alvarado Muñoz", Party: "Partido Nueva República"},
	{Code: "UP", Name: "Natalia Díaz Quintana", Party: "Unidos Podemos"},
	{Code: "PPSO", Name: "Laura Fernández Delgado", Party: "Partido Pueblo Soberano"},
	{Code: "PA", Name: "José Aguilar Berrocal", Party: "Partido Avanza"},
	{Code: "PSD", Name: "Luz Mary Alpízar Loaiza", Party: "Partido Social Demócrata"},
	{Code: "CDS", Name: "Ana Virginia Calzada Miranda", Party: "Ciudadanos"},
	{Code: "PNG", Name: "Fernando Zamora Castellanos", Party: "Partido Nacionalista"},
	{Code: "PEN", Name: "Claudio Alpízar Otoya", Party: "Partido El Pueblo"},
	{Code: "PIN", Name: "Luis Amador Jiménez", Party: "Partido Integración Nacional"},
	{Code: "CR1", Name: "Douglas Caamaño Quirós", Party: "Costa Rica 1"},
	{Code: "PJSC", Name: "Walter Hernández Juárez", Party: "Partido Justicia Social"},
	{Code: "PEL", Name: "Marco Rodríguez Badilla", Party: "Partido El Libano"},
	{Code: "PUCD", Name: "Boris Molina Acevedo", Party: "Partido Unión Costarricense Democrática"},
	{Code: "PDLCT", Name: "David Hernández Brenes", Party: "Partido de los Trabajadores"},
	{Code: "ACRM", Name: "Ronny Castillo González", Party: "Aquí Costa Rica Manda"},
}

// DefaultCandidates returns the registered 2026 presidential candidates in
// registration order.
func DefaultCandidates() []core.Candidate {
	return slices.Clone(roster)
}
