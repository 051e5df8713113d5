package request

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Options is the option bag passed alongside every request. Well-known keys:
//
//	"headers" (map[string]string) extra request headers
//	"json"    (map[string]any)    payload sent as a JSON body
//	"query"   (map[string]any)    payload sent as URL query parameters
type Options map[string]any

// ErrNotMergeable is returned when a merge key holds a non-map value.
var ErrNotMergeable = errors.New("existing value under merge key is not a map")

// Merge combines additions into opts without clobbering nested maps: when
// both sides hold a map under the same key, the two maps are combined
// key-by-key (addition entries win), preserving unaffected entries of the
// existing map. Neither input is mutated. An existing non-map value under a
// key present in additions is a type error.
func Merge(opts, additions Options) (Options, error) {
	merged := make(Options, len(opts)+len(additions))
	for key, value := range opts {
		merged[key] = value
	}

	for key, value := range additions {
		existing, ok := merged[key]
		if !ok {
			merged[key] = value
			continue
		}

		combined, err := mergeValues(existing, value)
		if err != nil {
			return nil, fmt.Errorf("cannot merge option %q: %w", key, err)
		}
		merged[key] = combined
	}

	return merged, nil
}

func mergeValues(existing, addition any) (any, error) {
	switch current := existing.(type) {
	case map[string]string:
		added, ok := addition.(map[string]string)
		if !ok {
			return nil, fmt.Errorf("mismatched map types %T and %T", existing, addition)
		}
		combined := make(map[string]string, len(current)+len(added))
		if err := mergo.Merge(&combined, current); err != nil {
			return nil, fmt.Errorf("failed to merge maps: %w", err)
		}
		if err := mergo.Merge(&combined, added, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge maps: %w", err)
		}
		return combined, nil
	case map[string]any:
		added, ok := addition.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mismatched map types %T and %T", existing, addition)
		}
		combined := make(map[string]any, len(current)+len(added))
		if err := mergo.Merge(&combined, current); err != nil {
			return nil, fmt.Errorf("failed to merge maps: %w", err)
		}
		if err := mergo.Merge(&combined, added, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge maps: %w", err)
		}
		return combined, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotMergeable, existing)
	}
}
