package actions

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"

	"github.com/indexer-tools/actionq/pkg/validator"
)

const tokenDecimals = 18

// ParseTokenAmount converts a decimal display amount ("12.5") into its
// base-unit representation (12500000000000000000). The token has 18
// decimals, like ether.
func ParseTokenAmount(value string) (*big.Int, error) {
	if !validator.IsValidAmount(value) {
		return nil, fmt.Errorf("invalid token amount %q", value)
	}

	whole, frac, _ := strings.Cut(value, ".")
	if len(frac) > tokenDecimals {
		return nil, fmt.Errorf("token amount %q exceeds %d decimal places", value, tokenDecimals)
	}

	result, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token amount %q", value)
	}
	result.Mul(result, big.NewInt(params.Ether))

	if frac != "" {
		fracUnits, ok := new(big.Int).SetString(frac+strings.Repeat("0", tokenDecimals-len(frac)), 10)
		if !ok {
			return nil, fmt.Errorf("invalid token amount %q", value)
		}
		result.Add(result, fracUnits)
	}

	return result, nil
}
