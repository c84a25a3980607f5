package analysis

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// generateSchema reflects a Go type into a JSON schema suitable for the
// provider's strict structured-output mode: no additional properties, every
// property required, applied recursively.
func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		panic(err)
	}
	var schema map[string]any
	if err := json.Unmarshal(b, &schema); err != nil {
		panic(err)
	}
	tightenForStrictMode(schema)
	return schema
}

func tightenForStrictMode(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok && len(props) > 0 {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			schema["required"] = required
		}
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				tightenForStrictMode(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		tightenForStrictMode(items)
	}
	if ap, ok := schema["additionalProperties"].(map[string]any); ok {
		tightenForStrictMode(ap)
	}
}
