package personajes

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("personaje already exists")
	ErrNotFound   = errors.New("personaje not found")

	// ErrStoreIO cubre fallas de lectura/escritura del archivo de datos.
	ErrStoreIO = errors.New("store io error")
	// ErrStoreInit indica que la colección no se pudo cargar al arrancar.
	ErrStoreInit = errors.New("store init error")
)

// Mensajes visibles para el cliente.
const (
	MsgIDNoEntero   = "El id debe ser un número entero"
	MsgFaltanDatos  = "Faltan datos obligatorios"
	MsgIDDuplicado  = "Ya existe un personaje con ese id"
	MsgNoEncontrado = "Personaje no encontrado"
)

// ValidationError lleva el mensaje que ve el cliente y matchea ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError recuerda el id buscado para armar el cuerpo 404.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("personaje %d not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
