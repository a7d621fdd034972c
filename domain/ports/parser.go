package ports

import "github.com/nftmart-dev/nftmart-contract-sdk/domain/entities"

// ScenarioParser parses raw scenario bytes into a Scenario.
type ScenarioParser interface {
	// Parse unmarshals scenario bytes into a Scenario struct.
	Parse(data []byte) (*entities.Scenario, error)
}
