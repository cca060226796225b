package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists or raced with another writer
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the acting user is not allowed to touch the item
	ErrForbidden = errors.New("you are not allowed to do this")
	// ErrUnknownTaxonomy will throw if a skill or category id does not exist
	ErrUnknownTaxonomy = errors.New("unknown skill or category")
)
