package i18next

import "errors"

var (
	ErrEmptyLanguage         = errors.New("i18next: language cannot be empty")
	ErrNilSource             = errors.New("i18next: source cannot be nil")
	ErrInvalidRecursionLimit = errors.New("i18next: recursion limit cannot be negative")
	ErrSourceNotFound        = errors.New("i18next: translation source not found")
	ErrInvalidSource         = errors.New("i18next: invalid translation source")
)
