package wealth

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file imports the export format of the predecessor app: a single JSON
// document holding every record under $.data, each record a flat object with
// a "dataType" discriminator and loosely typed fields (numbers sometimes
// strings, booleans as "y"/"n" tokens).

// ImportLegacy reads a legacy export document and converts its records into
// events, ready to be appended to a ledger. Any unreadable record aborts the
// import with an error naming the record.
func ImportLegacy(r io.Reader) ([]Event, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse legacy export: %w", err)
	}

	path := "$.data[*]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot find records in legacy export: %q %w", path, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single answer
		records = []any{jval}
	}

	var events []Event
	for i, jrec := range records {
		rec, ok := jrec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: not a JSON object", i)
		}
		ev, err := legacyEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// legacyEvent converts one legacy record into its event, based on the
// record's dataType.
func legacyEvent(rec map[string]any) (Event, error) {
	kind, err := jstring(rec, "dataType")
	if err != nil {
		return nil, err
	}

	switch kind {
	case "dateOfBirth":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		return NewBirthday(day), nil

	case "salary":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		name, err := jstring(rec, "name")
		if err != nil {
			return nil, err
		}
		value, err := jfloat(rec, "value")
		if err != nil {
			return nil, err
		}
		return NewSalary(day, "", name, M(value, "")), nil

	case "openAsset":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		name, err := jstring(rec, "name")
		if err != nil {
			return nil, err
		}
		kindName, err := jstring(rec, "type")
		if err != nil {
			return nil, err
		}
		typ, err := ParseAssetType(kindName)
		if err != nil {
			return nil, err
		}
		value, err := jfloat(rec, "value")
		if err != nil {
			return nil, err
		}
		units := 0.0
		if _, found := rec["units"]; found {
			if units, err = jfloat(rec, "units"); err != nil {
				return nil, err
			}
		}
		inNet, err := jyesno(rec, "includeInNetWorth")
		if err != nil {
			return nil, err
		}
		return NewOpenAsset(day, "", name, typ, M(value, ""), Q(units), inNet), nil

	case "transaction":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		name, err := jstring(rec, "name")
		if err != nil {
			return nil, err
		}
		amount, err := jfloat(rec, "amount")
		if err != nil {
			return nil, err
		}
		value, err := jfloat(rec, "value")
		if err != nil {
			return nil, err
		}
		units := 0.0
		if _, found := rec["units"]; found {
			if units, err = jfloat(rec, "units"); err != nil {
				return nil, err
			}
		}
		return NewDeposit(day, "", name, M(amount, ""), M(value, ""), Q(units)), nil

	case "value":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		name, err := jstring(rec, "name")
		if err != nil {
			return nil, err
		}
		value, err := jfloat(rec, "value")
		if err != nil {
			return nil, err
		}
		return NewValuation(day, "", name, M(value, "")), nil

	case "closeAsset":
		day, err := jdate(rec, "date")
		if err != nil {
			return nil, err
		}
		name, err := jstring(rec, "name")
		if err != nil {
			return nil, err
		}
		value, err := jfloat(rec, "value")
		if err != nil {
			return nil, err
		}
		return NewCloseAsset(day, "", name, M(value, "")), nil

	case "wiGoal":
		index, err := jfloat(rec, "wealthIndex")
		if err != nil {
			return nil, err
		}
		age, err := jfloat(rec, "age")
		if err != nil {
			return nil, err
		}
		return NewWIGoal("", index, age), nil

	case "yearGoal":
		year, err := jfloat(rec, "year")
		if err != nil {
			return nil, err
		}
		pct, err := jfloat(rec, "percentage")
		if err != nil {
			return nil, err
		}
		return NewYearGoal("", int(year), Percent(pct)), nil

	case "moneyLifetime":
		inflation, err := jfloat(rec, "inflation")
		if err != nil {
			return nil, err
		}
		pctOfSalary, err := jfloat(rec, "percentOfSalary")
		if err != nil {
			return nil, err
		}
		growth, err := jfloat(rec, "assetGrowth")
		if err != nil {
			return nil, err
		}
		return NewMoneyLifetime("", Percent(inflation), Percent(pctOfSalary), Percent(growth)), nil

	default:
		return nil, fmt.Errorf("unknown dataType %q", kind)
	}
}

// jstring plucks a string field from a legacy record.
func jstring(rec map[string]any, key string) (string, error) {
	jval, found := rec[key]
	if !found {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("field %q: not a string: %v", key, jval)
	}
	return s, nil
}

// jfloat plucks a numeric field from a legacy record. The legacy app
// sometimes exported numbers as strings, with a comma decimal separator.
func jfloat(rec map[string]any, key string) (float64, error) {
	jval, found := rec[key]
	if !found {
		return 0, fmt.Errorf("missing field %q", key)
	}
	if f, ok := jval.(float64); ok {
		return f, nil
	}
	sval, ok := jval.(string)
	if !ok {
		return 0, fmt.Errorf("field %q: neither a number nor a string: %v", key, jval)
	}
	sval = strings.ReplaceAll(sval, ",", ".")
	sval = strings.ReplaceAll(sval, " ", "")
	f, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: invalid number %q: %w", key, sval, err)
	}
	return f, nil
}

// jdate plucks a date field from a legacy record.
func jdate(rec map[string]any, key string) (Date, error) {
	s, err := jstring(rec, key)
	if err != nil {
		return Date{}, err
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("field %q: %w", key, err)
	}
	return d, nil
}

// jyesno plucks a y/n token from a legacy record. Only the literal tokens
// "y" and "n" are accepted.
func jyesno(rec map[string]any, key string) (bool, error) {
	s, err := jstring(rec, key)
	if err != nil {
		return false, err
	}
	switch s {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("field %q: expected \"y\" or \"n\", got %q", key, s)
	}
}
