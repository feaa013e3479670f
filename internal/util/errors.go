package util

import (
	"errors"

	"kettolingo_backend/internal/model"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Aliased from model so model does not need to import util, which
	// would cycle through jwt.go's use of model.User.
	ErrInvalidLanguage        = model.ErrInvalidLanguage
	ErrCategoryNotFound       = errors.New("category not found")
	ErrWordMissingTranslation = errors.New("word has no translation for the requested language")
)
