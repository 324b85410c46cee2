package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inventor200/MindustryParser/internal/format"
)

// parseLiteral converts a user-supplied string into a value of the given
// kind. This is the grammar accepted by write operations on the command
// line.
func parseLiteral(kind format.Kind, raw string) (format.Value, error) {
	switch kind {
	case format.KindBoolean:
		b, err := ParseBool(raw)
		if err != nil {
			return format.Value{}, err
		}
		return format.NewBoolean(b), nil

	case format.KindUInt32:
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return format.Value{}, fmt.Errorf("%w: %q is not a uint32", ErrInvalidNumericLiteral, raw)
		}
		return format.NewUInt32(uint32(v)), nil

	case format.KindUInt64:
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return format.Value{}, fmt.Errorf("%w: %q is not a uint64", ErrInvalidNumericLiteral, raw)
		}
		return format.NewUInt64(v), nil

	case format.KindFloat32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return format.Value{}, fmt.Errorf("%w: %q is not a float32", ErrInvalidNumericLiteral, raw)
		}
		return format.NewFloat32(float32(v)), nil

	case format.KindText:
		if len(raw) > format.MaxTextLen {
			return format.Value{}, fmt.Errorf("%w: got %d bytes", ErrTextTooLong, len(raw))
		}
		return format.NewText(raw), nil

	case format.KindBytes:
		return format.Value{}, ErrUnsupportedOperation

	default:
		return format.Value{}, fmt.Errorf("settings: cannot parse literal for %s", kind)
	}
}

// ParseBool maps the settings boolean literal sets onto a bool,
// case-insensitively:
//
//	false: 0 false f nil no off inactive
//	true:  1 true t yes on active
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "0", "false", "f", "nil", "no", "off", "inactive":
		return false, nil
	case "1", "true", "t", "yes", "on", "active":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBooleanLiteral, raw)
	}
}
