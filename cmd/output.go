package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rios0rios0/vcsbus/domain"
)

// printEnvelope renders the decoded provider response as indented JSON.
// The envelope is printed even when the operation errored, so the provider
// message stays visible.
func printEnvelope(envelope *domain.Envelope) {
	if envelope == nil || envelope.Body == nil {
		return
	}
	rendered, err := json.MarshalIndent(envelope.Body, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(rendered))
}

// parseFields converts repeated --field key=value flags into a payload map.
// Values that parse as JSON keep their type (false, 42); everything else is
// passed through as a string.
func parseFields(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", pair)
		}

		var typed any
		if err := json.Unmarshal([]byte(value), &typed); err != nil {
			typed = value
		}
		fields[key] = typed
	}

	return fields, nil
}
