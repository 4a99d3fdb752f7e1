package personajes

// Personaje es el documento tal cual se guarda en el archivo de datos.
//
// Los campos opcionales usan omitempty: un reemplazo completo (PUT) que no
// los envía los elimina del documento en lugar de conservar el valor previo.
type Personaje struct {
	ID     int      `json:"id"`
	Nombre string   `json:"nombre,omitempty"`
	Edad   *float64 `json:"edad,omitempty"`
	Genero string   `json:"genero,omitempty"`
	Raza   string   `json:"raza,omitempty"`
	Clase  string   `json:"clase,omitempty"`

	// Campos descriptivos de solo lectura; solo los expone el formatter.
	Profesion    string `json:"profesion,omitempty"`
	Personalidad string `json:"personalidad,omitempty"`
	Vivo         *bool  `json:"vivo,omitempty"`
	Img          string `json:"img,omitempty"`
	Frase        string `json:"frase,omitempty"`
}

// PersonajeFormateado es la proyección que devuelve GET /personajes/{id}.
type PersonajeFormateado struct {
	ID           int      `json:"id"`
	Nombre       string   `json:"nombre"`
	Edad         *float64 `json:"edad,omitempty"`
	Profesion    string   `json:"profesion,omitempty"`
	Personalidad string   `json:"personalidad,omitempty"`
	Estado       string   `json:"estado"`
	Imagen       string   `json:"imagen"`
	Genero       string   `json:"genero"`
	Raza         string   `json:"raza"`
	Clase        string   `json:"clase"`
	FraseIconica string   `json:"fraseiconica"`
}

// ErrorBody es el cuerpo canónico de "no encontrado".
type ErrorBody struct {
	Error   string `json:"error"`
	Mensaje string `json:"mensaje"`
	Success bool   `json:"success"`
}
