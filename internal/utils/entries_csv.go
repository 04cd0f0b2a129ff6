package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// EntryRow is one participant entry read from a CSV file
type EntryRow struct {
	Line        int
	Participant common.Address
	Amount      *big.Int
}

// ReadEntries reads participant entries from CSV. The header must name an
// address column; rows without an amount use defaultAmount. Bad rows are
// reported in rowErrs and skipped.
func ReadEntries(r io.Reader, defaultAmount *big.Int) (rows []EntryRow, rowErrs []error, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	addressIdx := findColumnIndex(header, []string{"Address", "Participant", "Player", "Wallet"})
	amountIdx := findColumnIndex(header, []string{"Amount", "Value", "Entry Fee"})
	if addressIdx == -1 {
		return nil, nil, errors.New("address column not found in CSV")
	}

	line := 1
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		line++
		if readErr != nil {
			rowErrs = append(rowErrs, fmt.Errorf("line %d: %w", line, readErr))
			continue
		}
		if addressIdx >= len(record) {
			rowErrs = append(rowErrs, fmt.Errorf("line %d: missing address", line))
			continue
		}

		participant, perr := ParseAddress(record[addressIdx])
		if perr != nil {
			rowErrs = append(rowErrs, fmt.Errorf("line %d: %w", line, perr))
			continue
		}

		amount := defaultAmount
		if amountIdx != -1 && amountIdx < len(record) && strings.TrimSpace(record[amountIdx]) != "" {
			amount, perr = ParseAmount(record[amountIdx])
			if perr != nil {
				rowErrs = append(rowErrs, fmt.Errorf("line %d: %w", line, perr))
				continue
			}
		}
		if amount == nil {
			rowErrs = append(rowErrs, fmt.Errorf("line %d: no amount and no default", line))
			continue
		}

		rows = append(rows, EntryRow{Line: line, Participant: participant, Amount: new(big.Int).Set(amount)})
	}
	return rows, rowErrs, nil
}

func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}
