package debtbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The on-disk format is JSONL: one record per line, identified by a
// "record" discriminator. Files open with a meta record carrying the
// schema version, and decoders skip record kinds they do not know, so
// the format can grow without breaking older readers.

// recordVersion is the version of the on-disk record schema.
const recordVersion = 1

// Record discriminators.
const (
	recMeta    = "meta"
	recAccount = "account"
	recDebt    = "debt"
)

// Debt statuses as persisted.
const (
	statusCurrent = "current"
	statusPaid    = "paid"
)

// amountRec is a specialized struct to read a money value in two fields.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// writeRecord marshals a single record and writes it as one JSONL line.
func writeRecord(w io.Writer, jw *jsonObjectWriter) error {
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("persist error: cannot write to file: %w", err)
	}
	return nil
}

func encodeMeta(w io.Writer) error {
	var jw jsonObjectWriter
	jw.Append("record", recMeta)
	jw.Append("version", recordVersion)
	return writeRecord(w, &jw)
}

// decodeMeta checks that a meta line carries a version this reader
// understands.
func decodeMeta(line []byte) error {
	var meta struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(line, &meta); err != nil {
		return fmt.Errorf("format error in meta record %q: %w", string(line), err)
	}
	if meta.Version > recordVersion {
		return fmt.Errorf("unsupported record version %d (up to %d is readable)", meta.Version, recordVersion)
	}
	return nil
}

// EncodeAccounts persists the full username to account table as JSONL,
// one account per line in username order for a canonical output.
func EncodeAccounts(w io.Writer, table map[string]Account) error {
	if err := encodeMeta(w); err != nil {
		return err
	}
	usernames := slices.Collect(maps.Keys(table))
	slices.Sort(usernames)
	for _, username := range usernames {
		a := table[username]
		var jw jsonObjectWriter
		jw.Append("record", recAccount)
		jw.Append("username", a.Username)
		jw.Append("fullName", a.FullName)
		jw.Optional("email", a.Email)
		jw.Append("password", a.Password)
		jw.Append("type", a.Type.String())
		if err := writeRecord(w, &jw); err != nil {
			return fmt.Errorf("persist error: cannot write account %q: %w", username, err)
		}
	}
	return nil
}

// DecodeAccounts reads a JSONL stream of account records back into a
// username to account table.
func DecodeAccounts(r io.Reader) (map[string]Account, error) {
	table := make(map[string]Account)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recMeta:
			if err := decodeMeta(line); err != nil {
				return nil, err
			}
		case recAccount:
			var rec struct {
				Username string `json:"username"`
				FullName string `json:"fullName"`
				Email    string `json:"email"`
				Password string `json:"password"`
				Type     string `json:"type"`
			}
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
			}
			userType, err := ParseUserType(rec.Type)
			if err != nil {
				return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
			}
			if _, exists := table[rec.Username]; exists {
				return nil, fmt.Errorf("format error: username %q is already defined", rec.Username)
			}
			table[rec.Username] = Account{
				FullName: rec.FullName,
				Email:    rec.Email,
				Username: rec.Username,
				Password: rec.Password,
				Type:     userType,
			}
		default:
			// Unknown record kinds are skipped for forward compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return table, nil
}

func encodeDebt(w io.Writer, d Debt, status string) error {
	var jw jsonObjectWriter
	jw.Append("record", recDebt)
	jw.Append("status", status)
	jw.Append("name", d.Name)
	jw.Append("balance", d.Balance)
	jw.Append("rate", d.Rate)
	jw.Append("minPayment", d.MinPayment)
	return writeRecord(w, &jw)
}

// EncodeDebts persists a user's two debt sequences as JSONL: current
// debts first, in priority order, then the paid-off set.
func EncodeDebts(w io.Writer, current, paidOff []Debt) error {
	if err := encodeMeta(w); err != nil {
		return err
	}
	for _, d := range current {
		if err := encodeDebt(w, d, statusCurrent); err != nil {
			return fmt.Errorf("persist error: cannot write debt %q: %w", d.Name, err)
		}
	}
	for _, d := range paidOff {
		if err := encodeDebt(w, d, statusPaid); err != nil {
			return fmt.Errorf("persist error: cannot write debt %q: %w", d.Name, err)
		}
	}
	return nil
}

// DecodeDebts reads a JSONL stream of debt records back into the current
// and paid-off sequences, preserving line order.
func DecodeDebts(r io.Reader) (current, paidOff []Debt, err error) {
	current = make([]Debt, 0)
	paidOff = make([]Debt, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recMeta:
			if err := decodeMeta(line); err != nil {
				return nil, nil, err
			}
		case recDebt:
			var rec struct {
				Status     string    `json:"status"`
				Name       string    `json:"name"`
				Balance    amountRec `json:"balance"`
				Rate       float64   `json:"rate"`
				MinPayment amountRec `json:"minPayment"`
			}
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, fmt.Errorf("format error on line %q: %w", string(line), err)
			}
			d := Debt{
				Name:       rec.Name,
				Balance:    rec.Balance.Money(),
				Rate:       Percent(rec.Rate),
				MinPayment: rec.MinPayment.Money(),
			}
			switch rec.Status {
			case statusCurrent:
				current = append(current, d)
			case statusPaid:
				paidOff = append(paidOff, d)
			default:
				return nil, nil, fmt.Errorf("format error: unknown debt status %q", rec.Status)
			}
		default:
			// Unknown record kinds are skipped for forward compatibility.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("error reading from input: %w", err)
	}
	return current, paidOff, nil
}
