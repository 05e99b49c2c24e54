package networks

import "errors"

var (
	// ErrInvalidAddress is returned when the address part is not an IP of the expected version.
	ErrInvalidAddress = errors.New("networks: invalid ip address")

	// ErrMissingPrefixLength is returned when a CIDR string has no "/" or nothing after it.
	ErrMissingPrefixLength = errors.New("networks: missing cidr prefix length")

	// ErrInvalidPrefixLength is returned when the prefix length is not an unsigned decimal.
	ErrInvalidPrefixLength = errors.New("networks: invalid cidr prefix length")

	// ErrPrefixLengthOutOfRange is returned when the prefix length exceeds the address width.
	ErrPrefixLengthOutOfRange = errors.New("networks: cidr prefix length out of range")
)
