// Command schema-generator writes navtree.schema.json, the JSON schema for
// navtree.yml including the "logging" extension section.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/navtree/config"
	"github.com/grovetools/navtree/logging"
)

const outputPath = "navtree.schema.json"

func main() {
	base, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating config schema: %v", err)
	}

	var composed map[string]interface{}
	if err := json.Unmarshal(base, &composed); err != nil {
		log.Fatalf("Error decoding config schema: %v", err)
	}

	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}
	loggingSchema := r.Reflect(&logging.Config{})
	loggingSchema.Version = ""
	loggingSchema.Description = "Logging settings for navtree."
	loggingSchema.Required = nil

	properties, ok := composed["properties"].(map[string]interface{})
	if !ok {
		properties = make(map[string]interface{})
		composed["properties"] = properties
	}
	properties["logging"] = loggingSchema

	data, err := json.MarshalIndent(composed, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", outputPath)
}
