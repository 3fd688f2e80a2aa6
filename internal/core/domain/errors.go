package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCollection indicates a collection name outside the
	// recognised set. Search surfaces map this to an empty result;
	// management surfaces report it.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownField indicates a document field name outside the
	// recognised set, caught when loading corpus data.
	ErrUnknownField = errors.New("unknown field")

	// ErrCorpusCorrupt indicates collection or rule data that could
	// not be decoded at load time. Loading fails fast on this.
	ErrCorpusCorrupt = errors.New("corpus corrupt")

	// ErrRecommendationNotFound indicates the archive holds no
	// recommendation with the requested ID.
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrInvalidSetting indicates a settings value outside its valid
	// range (for example a negative k1).
	ErrInvalidSetting = errors.New("invalid setting")
)
