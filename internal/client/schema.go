package client

import (
	"embed"
	"fmt"
	"sync"

	"github.com/jbeshir/promptly-mcp/internal/apierr"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Operation names. They label logs and metrics and select the response schema.
const (
	OpListPrompts   = "list_prompts"
	OpGetPrompt     = "get_prompt"
	OpCreatePrompt  = "create_prompt"
	OpUpdatePrompt  = "update_prompt"
	OpDeletePrompt  = "delete_prompt"
	OpListVersions  = "list_versions"
	OpPublishPrompt = "publish_prompt"
	OpRunPrompt     = "run_prompt"
	OpStreamRun     = "stream_run"
	OpListProjects  = "list_projects"
)

var operationSchemas = map[string]string{
	OpListPrompts:   "prompt_list",
	OpGetPrompt:     "prompt",
	OpCreatePrompt:  "prompt",
	OpUpdatePrompt:  "prompt",
	OpListVersions:  "version_list",
	OpPublishPrompt: "version",
	OpRunPrompt:     "run_result",
	OpListProjects:  "project_list",
}

var (
	compiledSchemas map[string]*gojsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
)

func getSchemas() (map[string]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled := make(map[string]*gojsonschema.Schema)
		for _, name := range operationSchemas {
			if _, ok := compiled[name]; ok {
				continue
			}
			data, err := schemaFS.ReadFile("schemas/" + name + ".json")
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", name, err)
				return
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", name, err)
				return
			}
			compiled[name] = schema
		}
		compiledSchemas = compiled
	})
	return compiledSchemas, compileErr
}

// validateResponse checks body against the schema registered for operation.
// Operations without a schema always pass.
func validateResponse(operation string, status int, body []byte) error {
	name, ok := operationSchemas[operation]
	if !ok {
		return nil
	}

	schemas, err := getSchemas()
	if err != nil {
		return apierr.Wrap(apierr.KindUnexpected, "loading response schemas", err)
	}

	result, err := schemas[name].Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		e := apierr.Wrap(apierr.KindUnexpected, "unexpected response shape", err)
		e.Status = status
		return e
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, re.String())
	}
	return &apierr.Error{
		Kind:    apierr.KindUnexpected,
		Status:  status,
		Message: "unexpected response shape",
		Details: errs,
	}
}
