package models

import (
	_ "embed"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed record.schema.json
var recordSchemaJSON string

// recordSchema is the compiled JSON Schema for canonical prompt records.
var recordSchema *jsonschema.Schema

func init() {
	recordSchema = mustCompileSchema(recordSchemaJSON, "record.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := sonic.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateSchema validates one raw JSONL line against the canonical record
// schema. Returns nil when the line conforms.
func ValidateSchema(line []byte) error {
	var doc any
	if err := sonic.Unmarshal(line, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return recordSchema.Validate(doc)
}
