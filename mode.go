package taginput

import "fmt"

// Mode controls how repeated occurrences of the same tag within one parse
// pass are merged into a single value.
type Mode int

const (
	// ModeDefault defers to the parser's default mode. Descriptors
	// registered as bare names carry this until parse time.
	ModeDefault Mode = iota
	// ModeOverwrite keeps only the last occurrence.
	ModeOverwrite
	// ModeArray keeps a single occurrence as a plain string and promotes
	// to a list on the second occurrence.
	ModeArray
	// ModeJoin concatenates occurrences with the descriptor's separator.
	ModeJoin
)

// String returns the config-file spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeOverwrite:
		return "overwrite"
	case ModeArray:
		return "array"
	case ModeJoin:
		return "join"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a config-file spelling into a Mode. Unrecognized
// spellings are a configuration error.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "default":
		return ModeDefault, nil
	case "overwrite":
		return ModeOverwrite, nil
	case "array":
		return ModeArray, nil
	case "join":
		return ModeJoin, nil
	}
	return ModeDefault, NewConfigError("", "mode", fmt.Sprintf("unrecognized mode %q", s))
}

func (m Mode) valid() bool {
	return m >= ModeDefault && m <= ModeJoin
}
