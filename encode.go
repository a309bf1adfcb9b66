package wealth

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are persisted as bare numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes events from a stream of JSONL data, one JSON object
// per line, discriminated by its "event" tag.
//
// Lines are decoded first and appended as one batch, so the file order
// carries no meaning: an asset's transaction may appear before its
// open-asset line. Malformed lines fail fast, with their line number,
// before any derivation can run on corrupt data.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var identifier struct {
			Event EventType `json:"event"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify event in %q: %w", line, string(raw), err)
		}

		var decoded Event
		var err error
		switch identifier.Event {
		case EventBirthday:
			var e Birthday
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventSalary:
			var e Salary
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventOpenAsset:
			var e OpenAsset
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventTransaction:
			var e Deposit
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventValue:
			var e Valuation
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventCloseAsset:
			var e CloseAsset
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventWIGoal:
			var e WIGoal
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventYearGoal:
			var e YearGoal
			err = json.Unmarshal(raw, &e)
			decoded = e
		case EventMoneyLifetime:
			var e MoneyLifetime
			err = json.Unmarshal(raw, &e)
			decoded = e
		default:
			err = fmt.Errorf("unknown event %q", identifier.Event)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, decoded)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger := NewLedger()
	if err := ledger.Append(events...); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeEvent marshals a single event and writes it to the writer followed
// by a newline, in JSONL format. Keys come out in a fixed order, the output
// is canonical.
func EncodeEvent(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", ev.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

// EncodeLedger persists all events to an io.Writer in JSONL format, in
// chronological order. The sort is stable, same-date events keep their
// relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for ev := range ledger.Events() {
		if err := EncodeEvent(w, ev); err != nil {
			return err
		}
	}
	return nil
}
