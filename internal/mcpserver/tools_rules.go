package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/fixturetools/stabilizer"
)

type listRulesInput struct{}

type ruleEntry struct {
	Pattern     string `json:"pattern"`
	Mode        string `json:"mode"`
	Replacement any    `json:"replacement"`
}

type listRulesOutput struct {
	Count int         `json:"count"`
	Rules []ruleEntry `json:"rules"`
}

func handleListRules(_ context.Context, _ *mcp.CallToolRequest, _ listRulesInput) (*mcp.CallToolResult, listRulesOutput, error) {
	rules := stabilizer.DefaultRules()

	output := listRulesOutput{Count: len(rules)}
	output.Rules = make([]ruleEntry, len(rules))
	for i, r := range rules {
		output.Rules[i] = ruleEntry{
			Pattern:     r.Pattern,
			Mode:        r.Mode.String(),
			Replacement: r.Replacement,
		}
	}

	return nil, output, nil
}
