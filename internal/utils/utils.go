package utils

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidAddress = errors.New("invalid address")
)

var units = map[string]*big.Int{
	"wei":   big.NewInt(params.Wei),
	"gwei":  big.NewInt(params.GWei),
	"ether": big.NewInt(params.Ether),
	"eth":   big.NewInt(params.Ether),
}

// ParseAmount parses "10000000000000000", "0.01 ether" or "5 gwei" into wei.
// Fractions below one wei are rejected.
func ParseAmount(s string) (*big.Int, error) {
	fields := strings.Fields(strings.ToLower(s))
	var unit *big.Int
	switch len(fields) {
	case 1:
		unit = units["wei"]
	case 2:
		var ok bool
		if unit, ok = units[fields[1]]; !ok {
			return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidAmount, fields[1])
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole, frac, _ := strings.Cut(fields[0], ".")
	if whole == "" || !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	wei, _ := new(big.Int).SetString(whole+frac, 10)
	wei.Mul(wei, unit)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	wei, rem := new(big.Int).QuoRem(wei, scale, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: %q is not a whole number of wei", ErrInvalidAmount, s)
	}
	return wei, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseAddress accepts a 0x-prefixed 20-byte hex address
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ParseRandomValue parses a decimal or 0x-prefixed hex uint256
func ParseRandomValue(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, fmt.Errorf("invalid random value %q", s)
	}
	return v, nil
}

// MaskAddress shortens an address for logs
func MaskAddress(addr common.Address) string {
	hex := addr.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

// Pagination parses page and limit query values, falling back to page 1 and defaultLimit
func Pagination(pageStr, limitStr string, defaultLimit, maxLimit int) (page, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
