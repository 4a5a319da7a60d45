// Package spectrum places parties on a two-axis ideological map.
//
// Each Entry carries an economic coordinate (negative leans toward an active
// State, positive toward free markets) and a social coordinate (negative is
// progressive, positive conservative), both within [-5, 5]. The table is
// static reference data and does not depend on the corpus; callers that want
// candidate names look them up by party code.
package spectrum
