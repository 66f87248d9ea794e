package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fixturetools/stabilizer"
)

type ruleSpec struct {
	Pattern     string `json:"pattern"               jsonschema:"Field name or dotted path pattern"`
	Replacement any    `json:"replacement"           jsonschema:"Stable value to substitute (null removes the subtree's content)"`
	Substring   bool   `json:"substring,omitempty"   jsonschema:"Match by case-insensitive containment instead of exact equality"`
}

type stabilizeInput struct {
	Fixture         fixtureInput `json:"fixture"                    jsonschema:"The fixture to stabilize"`
	ExtraRules      []ruleSpec   `json:"extra_rules,omitempty"      jsonschema:"Additional rules appended after the built-in table (built-ins keep precedence)"`
	IncludeDocument bool         `json:"include_document,omitempty" jsonschema:"Include the full stabilized document in output"`
	Output          string       `json:"output,omitempty"           jsonschema:"File path to write the stabilized document. If omitted the document is returned inline when include_document is true."`
	Offset          int          `json:"offset,omitempty"           jsonschema:"Skip the first N changes (for pagination)"`
	Limit           int          `json:"limit,omitempty"            jsonschema:"Maximum number of changes to return (default 100)"`
}

type changeApplied struct {
	Kind        string `json:"kind"`
	Path        string `json:"path"`
	Pattern     string `json:"pattern,omitempty"`
	Description string `json:"description"`
}

type stabilizeOutput struct {
	ChangeCount int             `json:"change_count"`
	Returned    int             `json:"returned"`
	Changes     []changeApplied `json:"changes,omitempty"`
	Format      string          `json:"format"`
	WrittenTo   string          `json:"written_to,omitempty"`
	Document    string          `json:"document,omitempty"`
}

func handleStabilize(_ context.Context, _ *mcp.CallToolRequest, input stabilizeInput) (*mcp.CallToolResult, stabilizeOutput, error) {
	parsed, err := input.Fixture.resolve()
	if err != nil {
		return errResult(err), stabilizeOutput{}, nil
	}

	opts := []stabilizer.Option{stabilizer.WithParsed(*parsed)}
	if len(input.ExtraRules) > 0 {
		extras := make([]stabilizer.Rule, len(input.ExtraRules))
		for i, spec := range input.ExtraRules {
			if spec.Pattern == "" {
				return errResult(fmt.Errorf("extra_rules[%d]: pattern must not be empty", i)), stabilizeOutput{}, nil
			}
			mode := stabilizer.MatchExact
			if spec.Substring {
				mode = stabilizer.MatchSubstring
			}
			extras[i] = stabilizer.Rule{
				Pattern:     spec.Pattern,
				Replacement: spec.Replacement,
				Mode:        mode,
			}
		}
		opts = append(opts, stabilizer.WithExtraRules(extras...))
	}
	if cfg.CounterValue != nil {
		opts = append(opts, stabilizer.WithCounterValue(cfg.CounterValue))
	}

	result, err := stabilizer.StabilizeWithOptions(opts...)
	if err != nil {
		return errResult(err), stabilizeOutput{}, nil
	}

	output := stabilizeOutput{
		ChangeCount: result.ChangeCount,
		Format:      string(result.SourceFormat),
	}

	output.Changes = makeSlice[changeApplied](len(result.Changes))
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, changeApplied{
			Kind:        string(c.Kind),
			Path:        c.Path,
			Pattern:     c.Pattern,
			Description: c.Description,
		})
	}

	output.Changes = paginate(output.Changes, input.Offset, input.Limit)
	output.Returned = len(output.Changes)

	needsDocument := input.Output != "" || input.IncludeDocument
	if needsDocument {
		data, err := result.ToParseResult().Marshal(result.SourceFormat, "  ")
		if err != nil {
			return errResult(err), stabilizeOutput{}, nil
		}

		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, 0o644); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), stabilizeOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}
