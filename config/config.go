// Package config holds the embedded default deal parameters.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"flip-agent/domain"
)

//go:embed default-deal.yaml
var defaultDealYAML []byte

// DefaultDeal returns the baseline DealInput new callers start from.
func DefaultDeal() (domain.DealInput, error) {
	var input domain.DealInput
	if err := yaml.Unmarshal(defaultDealYAML, &input); err != nil {
		return domain.DealInput{}, fmt.Errorf("parsing embedded default deal: %w", err)
	}
	return input, nil
}
