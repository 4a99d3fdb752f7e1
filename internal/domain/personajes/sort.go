package personajes

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByNombre devuelve una copia ordenada por nombre con colación en
// español a nivel de letra base ("a", "A" y "á" comparan igual).
// El orden es estable y no toca el slice recibido.
func SortByNombre(items []Personaje) []Personaje {
	out := make([]Personaje, len(items))
	copy(out, items)

	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	c := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Nombre, out[j].Nombre) < 0
	})
	return out
}
