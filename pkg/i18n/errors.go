package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrNoTranslations   = errors.New("no translations found")
)
