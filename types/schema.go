package types

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ConversationSchema returns the JSON schema for a dataset conversation
// record. Dataset tooling uses it to check raw files before any example is
// decoded into Message values.
func ConversationSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Conversation{})
	return json.MarshalIndent(schema, "", "  ")
}
