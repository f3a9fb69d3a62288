package contract

import "github.com/tatamilog/tatami/internal/app"

type ValidationErrorCode = app.ValidationErrorCode

const (
	ErrInvalidClassType ValidationErrorCode = app.ErrInvalidClassType
	ErrInvalidTime      ValidationErrorCode = app.ErrInvalidTime
	ErrInvalidWeekday   ValidationErrorCode = app.ErrInvalidWeekday
	ErrInvalidTarget    ValidationErrorCode = app.ErrInvalidTarget
	ErrEmptyIntention   ValidationErrorCode = app.ErrEmptyIntention
)

type ValidationError = app.ValidationError
