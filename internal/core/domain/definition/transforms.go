package definition

import (
	"fmt"
	"sort"
	"strings"

	"gateguard/internal/platform/validator"
)

const CodeBlank = "blank"
const CodeUnique = "unique"

// transforms are the named validators a definition may reference from its
// validators list or hook.
var transforms = map[string]validator.Func{
	"trim": func(value any) (any, error) {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return value, nil
	},
	"lower": func(value any) (any, error) {
		if s, ok := value.(string); ok {
			return strings.ToLower(s), nil
		}
		return value, nil
	},
	"upper": func(value any) (any, error) {
		if s, ok := value.(string); ok {
			return strings.ToUpper(s), nil
		}
		return value, nil
	},
	"not_blank": func(value any) (any, error) {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return nil, validator.NewValidationError("This field may not be blank.", CodeBlank)
		}
		return value, nil
	},
	"unique": func(value any) (any, error) {
		items, ok := value.([]any)
		if !ok {
			return value, nil
		}
		seen := make(map[string]struct{}, len(items))
		for _, item := range items {
			key := fmt.Sprintf("%T:%v", item, item)
			if _, dup := seen[key]; dup {
				return nil, validator.NewValidationError("Items must be unique.", CodeUnique)
			}
			seen[key] = struct{}{}
		}
		return value, nil
	},
}

func lookupTransform(name string) (validator.Func, error) {
	fn, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransform, name)
	}
	return fn, nil
}

func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
