package n8n

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed execution.schema.json
var executionSchemaData []byte

var (
	executionSchema *jsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(executionSchemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal execution schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("execution.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add execution schema resource: %w", err)
			return
		}

		executionSchema, err = compiler.Compile("execution.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile execution schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateDocument checks that data is a structurally sound n8n execution
// export before any decoding is attempted.
func ValidateDocument(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := executionSchema.Validate(v); err != nil {
		return fmt.Errorf("execution export validation failed: %w", err)
	}

	return nil
}
