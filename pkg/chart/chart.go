// Package chart classifies accounts into the chart-of-accounts types based
// on the root segment of the account name.
package chart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/digitalbricklayer/bozo/pkg/journal"
)

// Account types recognized by the ledger.
const (
	TypeAsset     = "asset"
	TypeLiability = "liability"
	TypeIncome    = "income"
	TypeExpense   = "expense"
	TypeCapital   = "capital"
	TypeDrawings  = "drawings"
)

// ValidType reports whether t is a recognized account type.
func ValidType(t string) bool {
	switch t {
	case TypeAsset, TypeLiability, TypeIncome, TypeExpense, TypeCapital, TypeDrawings:
		return true
	}
	return false
}

// mappingConfig is the YAML shape of a chart mapping file.
type mappingConfig struct {
	// Roots maps an account root segment to an account type,
	// e.g. "savings: asset".
	Roots map[string]string `yaml:"roots"`
	// DefaultType is assigned to accounts whose root segment has no mapping.
	DefaultType string `yaml:"default_type"`
}

// Mapper resolves account names to account types. Accounts created
// implicitly on first use are typed through the mapper, so resolution never
// fails: unmapped roots fall back to the default type.
type Mapper struct {
	roots       map[string]string
	defaultType string
}

// NewMapper creates a Mapper with the built-in root mappings.
func NewMapper() *Mapper {
	return &Mapper{
		roots: map[string]string{
			"asset":       TypeAsset,
			"assets":      TypeAsset,
			"liability":   TypeLiability,
			"liabilities": TypeLiability,
			"income":      TypeIncome,
			"revenue":     TypeIncome,
			"expense":     TypeExpense,
			"expenses":    TypeExpense,
			"capital":     TypeCapital,
			"equity":      TypeCapital,
			"drawings":    TypeDrawings,
		},
		defaultType: TypeExpense,
	}
}

// NewMapperFromFile creates a Mapper from a YAML mapping file layered over
// the built-in mappings.
func NewMapperFromFile(configPath string) (*Mapper, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart mapping file: %w", err)
	}

	var config mappingConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse chart mapping YAML: %w", err)
	}

	mapper := NewMapper()
	for root, accountType := range config.Roots {
		if !ValidType(accountType) {
			return nil, fmt.Errorf("invalid account type %q for root %q", accountType, root)
		}
		mapper.roots[root] = accountType
	}
	if config.DefaultType != "" {
		if !ValidType(config.DefaultType) {
			return nil, fmt.Errorf("invalid default account type %q", config.DefaultType)
		}
		mapper.defaultType = config.DefaultType
	}

	return mapper, nil
}

// Resolve returns the account type for an account name.
func (m *Mapper) Resolve(accountName string) string {
	if accountType, ok := m.roots[journal.AccountRoot(accountName)]; ok {
		return accountType
	}
	return m.defaultType
}

// HasMapping reports whether the account's root segment is explicitly mapped.
func (m *Mapper) HasMapping(accountName string) bool {
	_, ok := m.roots[journal.AccountRoot(accountName)]
	return ok
}
