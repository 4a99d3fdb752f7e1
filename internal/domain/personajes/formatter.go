package personajes

import "fmt"

const (
	EstadoVivo   = "Vivo"
	EstadoMuerto = "Muerto"

	SinImagen = "No hay imagen disponible"
	SinGenero = "Genero no especificado"
	SinRaza   = "Raza no especificado"
	SinClase  = "Clase no especificado"
	SinFrase  = "No hay frase iconica disponible"
)

// Format proyecta un personaje guardado a su representación de API.
// Si p es nil devuelve nil.
func Format(p *Personaje) *PersonajeFormateado {
	if p == nil {
		return nil
	}

	estado := EstadoMuerto
	if p.Vivo != nil && *p.Vivo {
		estado = EstadoVivo
	}

	return &PersonajeFormateado{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Edad:         p.Edad,
		Profesion:    p.Profesion,
		Personalidad: p.Personalidad,
		Estado:       estado,
		Imagen:       orDefault(p.Img, SinImagen),
		Genero:       orDefault(p.Genero, SinGenero),
		Raza:         orDefault(p.Raza, SinRaza),
		Clase:        orDefault(p.Clase, SinClase),
		FraseIconica: orDefault(p.Frase, SinFrase),
	}
}

// NotFoundBody arma el cuerpo 404 para un id inexistente.
func NotFoundBody(id int) ErrorBody {
	return ErrorBody{
		Error:   fmt.Sprintf("Personaje con id %d no encontrado", id),
		Mensaje: fmt.Sprintf("no se encontro el personaje con id:%d", id),
		Success: false,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
