package services

import "fmt"

// Custom errors

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type BadRequestError struct{ Message string }

func (e *BadRequestError) Error() string { return e.Message }

type UnsupportedFileError struct{ Ext string }

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file type %q", e.Ext)
}

type EmptyContentError struct{ Filename string }

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("extracted content is empty for %q", e.Filename)
}

type GenerationError struct{ Message string }

func (e *GenerationError) Error() string { return e.Message }
