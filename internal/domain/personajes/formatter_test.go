package personajes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Nil(t *testing.T) {
	assert.Nil(t, Format(nil))
}

func TestFormat_Defaults(t *testing.T) {
	edad := 12.0
	got := Format(&Personaje{ID: 1, Nombre: "Aang", Edad: &edad})
	require.NotNil(t, got)

	assert.Equal(t, PersonajeFormateado{
		ID:           1,
		Nombre:       "Aang",
		Edad:         &edad,
		Estado:       EstadoMuerto,
		Imagen:       SinImagen,
		Genero:       SinGenero,
		Raza:         SinRaza,
		Clase:        SinClase,
		FraseIconica: SinFrase,
	}, *got)
}

func TestFormat_PlaceholderWording(t *testing.T) {
	got := Format(&Personaje{ID: 1})

	assert.Equal(t, "Raza no especificado", got.Raza)
	assert.Equal(t, "Clase no especificado", got.Clase)
	assert.Equal(t, "Genero no especificado", got.Genero)
	assert.Equal(t, "No hay imagen disponible", got.Imagen)
}

func TestFormat_PassThrough(t *testing.T) {
	vivo := true
	got := Format(&Personaje{
		ID:           2,
		Nombre:       "Toph",
		Profesion:    "Maestra tierra",
		Personalidad: "Directa",
		Vivo:         &vivo,
		Img:          "toph.png",
		Genero:       "F",
		Raza:         "Tierra",
		Clase:        "Maestra",
		Frase:        "Soy la mejor",
	})
	require.NotNil(t, got)

	assert.Equal(t, "Maestra tierra", got.Profesion)
	assert.Equal(t, "Directa", got.Personalidad)
	assert.Equal(t, EstadoVivo, got.Estado)
	assert.Equal(t, "toph.png", got.Imagen)
	assert.Equal(t, "F", got.Genero)
	assert.Equal(t, "Tierra", got.Raza)
	assert.Equal(t, "Maestra", got.Clase)
	assert.Equal(t, "Soy la mejor", got.FraseIconica)
}

func TestFormat_ExplicitlyDead(t *testing.T) {
	vivo := false
	assert.Equal(t, EstadoMuerto, Format(&Personaje{ID: 3, Vivo: &vivo}).Estado)
}

func TestNotFoundBody(t *testing.T) {
	body := NotFoundBody(99)

	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "99")
	assert.Equal(t, "no se encontro el personaje con id:99", body.Mensaje)
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, raw := range []string{"", "abc", "4.2", "12abc"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrValidation, "raw=%q", raw)
	}
}
