package wealth

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	// A JSONL stream with all event types, deliberately out of order: the
	// transaction line comes before the open-asset it belongs to.
	jsonlStream := `
{"event":"transaction","date":"2025-02-01","name":"TFSA","amount":500,"value":1500}
{"event":"date-of-birth","date":"1990-01-01"}
{"event":"salary","date":"2025-01-01","name":"acme","value":10000}
{"event":"open-asset","date":"2025-01-01","name":"TFSA","type":"savings","value":1000,"net":true}

{"event":"value","date":"2025-03-01","name":"TFSA","value":1550}
{"event":"close-asset","date":"2025-04-01","name":"TFSA","value":1600}
{"event":"wi-goal","wealth-index":2,"age":40}
{"event":"year-goal","year":2025,"percentage":10}
{"event":"money-lifetime","inflation":5,"percent-of-salary":20,"asset-growth":7}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonlStream))

	// 1. Check for unexpected errors
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	// 2. Check the number of events decoded
	if ledger.Len() != 9 {
		t.Fatalf("DecodeLedger() decoded wrong number of events. Got: %d, want: 9", ledger.Len())
	}

	// 3. Check the events come out chronologically: undated goals first in
	// their input order, then the dated events, same-date order preserved
	expectedTypes := []reflect.Type{
		reflect.TypeOf(WIGoal{}),
		reflect.TypeOf(YearGoal{}),
		reflect.TypeOf(MoneyLifetime{}),
		reflect.TypeOf(Birthday{}),
		reflect.TypeOf(Salary{}),
		reflect.TypeOf(OpenAsset{}),
		reflect.TypeOf(Deposit{}),
		reflect.TypeOf(Valuation{}),
		reflect.TypeOf(CloseAsset{}),
	}
	i := 0
	for ev := range ledger.Events() {
		if reflect.TypeOf(ev) != expectedTypes[i] {
			t.Errorf("event %d has wrong type. Got: %T, want: %v", i+1, ev, expectedTypes[i])
		}
		i++
	}
}

func TestEncodeEvent(t *testing.T) {
	// Canonical forms: fixed key order, bare numbers, zero fields omitted.
	testCases := []struct {
		name string
		ev   Event
		want string
	}{
		{
			name: "birthday",
			ev:   NewBirthday(MustParse("1990-01-01")),
			want: `{"event":"date-of-birth","date":"1990-01-01"}`,
		},
		{
			name: "salary",
			ev:   NewSalary(MustParse("2025-01-01"), "", "acme", NO(10000)),
			want: `{"event":"salary","date":"2025-01-01","name":"acme","value":10000}`,
		},
		{
			name: "open asset with units",
			ev:   NewOpenAsset(MustParse("2025-01-01"), "", "broker", TypeStocks, NO(1000), Q(10), true),
			want: `{"event":"open-asset","date":"2025-01-01","name":"broker","type":"stocks","value":1000,"units":10,"net":true}`,
		},
		{
			name: "open asset out of net worth",
			ev:   NewOpenAsset(MustParse("2025-01-01"), "", "car", TypeOther, NO(9000), Quantity{}, false),
			want: `{"event":"open-asset","date":"2025-01-01","name":"car","type":"other","value":9000}`,
		},
		{
			name: "transaction with memo",
			ev:   NewDeposit(MustParse("2025-02-01"), "bonus", "TFSA", NO(500), NO(1500), Quantity{}),
			want: `{"event":"transaction","date":"2025-02-01","memo":"bonus","name":"TFSA","amount":500,"value":1500}`,
		},
		{
			name: "withdrawal",
			ev:   NewDeposit(MustParse("2025-02-15"), "", "TFSA", NO(-200), NO(1300), Quantity{}),
			want: `{"event":"transaction","date":"2025-02-15","name":"TFSA","amount":-200,"value":1300}`,
		},
		{
			name: "valuation",
			ev:   NewValuation(MustParse("2025-03-01"), "", "TFSA", NO(1550.5)),
			want: `{"event":"value","date":"2025-03-01","name":"TFSA","value":1550.5}`,
		},
		{
			name: "close asset",
			ev:   NewCloseAsset(MustParse("2025-04-01"), "", "TFSA", NO(1600)),
			want: `{"event":"close-asset","date":"2025-04-01","name":"TFSA","value":1600}`,
		},
		{
			name: "wi goal has no date",
			ev:   NewWIGoal("", 2, 40),
			want: `{"event":"wi-goal","wealth-index":2,"age":40}`,
		},
		{
			name: "year goal",
			ev:   NewYearGoal("", 2025, 10),
			want: `{"event":"year-goal","year":2025,"percentage":10}`,
		},
		{
			name: "money lifetime",
			ev:   NewMoneyLifetime("", 5, 20, 7),
			want: `{"event":"money-lifetime","inflation":5,"percent-of-salary":20,"asset-growth":7}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncodeEvent(&buf, tc.ev); err != nil {
				t.Fatalf("EncodeEvent() returned an unexpected error: %v", err)
			}
			if got := strings.TrimSuffix(buf.String(), "\n"); got != tc.want {
				t.Errorf("EncodeEvent()\nGot:  %s\nWant: %s", got, tc.want)
			}
		})
	}
}

func TestEncodeLedger(t *testing.T) {
	// 1. Arrange: events in a deliberately unsorted order. ev2 and ev3
	// share a date, their relative order must be preserved.
	ev1 := NewValuation(MustParse("2025-08-03"), "", "TFSA", NO(1550))
	ev2 := NewSalary(MustParse("2025-08-01"), "", "acme", NO(10000))
	ev3 := NewValuation(MustParse("2025-08-01"), "", "TFSA", NO(1500)) // Same date as ev2

	ledger := &Ledger{
		events: []Event{
			ev1, // Should be last
			ev2, // Should be first
			ev3, // Should be second (stable sort)
		},
	}

	var want bytes.Buffer
	for _, ev := range []Event{ev2, ev3, ev1} {
		if err := EncodeEvent(&want, ev); err != nil {
			t.Fatalf("Failed to encode expected event: %v", err)
		}
	}

	// 2. Act
	var got bytes.Buffer
	if err := EncodeLedger(&got, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	// 3. Assert
	if got.String() != want.String() {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got.String(), want.String())
	}
}

func TestLedger_RoundTrip(t *testing.T) {
	l := NewLedger()
	err := l.Append(
		NewBirthday(MustParse("1990-01-01")),
		NewSalary(MustParse("2025-01-01"), "", "acme", NO(10000)),
		NewOpenAsset(MustParse("2025-01-01"), "", "TFSA", TypeSavings, NO(1000), Quantity{}, true),
		NewDeposit(MustParse("2025-02-01"), "", "TFSA", NO(500), NO(1500), Quantity{}),
		NewWIGoal("", 2, 40),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	if decoded.Len() != l.Len() {
		t.Fatalf("round trip lost events. Got: %d, want: %d", decoded.Len(), l.Len())
	}
	var original []Event
	for ev := range l.Events() {
		original = append(original, ev)
	}
	i := 0
	for ev := range decoded.Events() {
		if !ev.Equal(original[i]) {
			t.Errorf("event %d changed across the round trip.\nGot:  %+v\nWant: %+v", i+1, ev, original[i])
		}
		i++
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		stream  string
		wantErr string
	}{
		{
			name:    "malformed json names its line",
			stream:  "{\"event\":\"date-of-birth\",\"date\":\"1990-01-01\"}\n{\"event\":",
			wantErr: "line 2",
		},
		{
			name:    "unknown event",
			stream:  `{"event":"divorce","date":"2025-01-01"}`,
			wantErr: `unknown event "divorce"`,
		},
		{
			name:    "no event tag",
			stream:  `{"date":"2025-01-01"}`,
			wantErr: "unknown event",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.stream))
			if err == nil {
				t.Fatalf("DecodeLedger() expected an error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeLedger() error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeLedger_RejectsInvalidBatch(t *testing.T) {
	// decoding runs the full batch validation: an orphan transaction is
	// rejected even though every line parses fine
	stream := `{"event":"transaction","date":"2025-02-01","name":"ghost","amount":500,"value":1500}`

	_, err := DecodeLedger(strings.NewReader(stream))
	if !errors.Is(err, ErrOrphanAsset) {
		t.Errorf("DecodeLedger() error = %v, want ErrOrphanAsset", err)
	}
}
