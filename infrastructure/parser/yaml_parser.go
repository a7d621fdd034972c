// Package parser reads scenario files.
package parser

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"
	"github.com/nftmart-dev/nftmart-contract-sdk/domain/ports"
)

// YamlScenarioParser implements ScenarioParser for YAML.
type YamlScenarioParser struct {
	validate *validator.Validate
}

// NewYamlScenarioParser creates a new YamlScenarioParser.
func NewYamlScenarioParser() ports.ScenarioParser {
	return &YamlScenarioParser{validate: validator.New()}
}

// Parse unmarshals YAML bytes into a Scenario struct and validates it.
func (p *YamlScenarioParser) Parse(data []byte) (*entities.Scenario, error) {
	var scenario entities.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := p.validate.Struct(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", scenario.Name, err)
	}
	return &scenario, nil
}
