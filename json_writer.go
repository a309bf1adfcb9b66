package wealth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys come out exactly in the
// order they were appended. The journal is meant to be read and diffed by
// its owner, so every encoded line keeps the same field layout regardless of
// how Go would order struct fields or map keys. The zero value is ready to
// use, errors stick and surface at MarshalJSON.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

// comma separates the next field from the previous one, if any.
func (w *jsonObjectWriter) comma() {
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
}

// Append adds one key/value pair, the value marshaled with json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.comma()
	fmt.Fprintf(&w.buf, "%q:", key)
	w.buf.Write(data)
	return w
}

// Optional is Append for fields elided when zero, the writer-side twin of
// ",omitempty".
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed splices the fields of a raw JSON object into the object being
// built, keeping their order. Embedding an empty object adds nothing.
func (w *jsonObjectWriter) Embed(rawJSON []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	fields := bytes.TrimSpace(rawJSON)
	if len(fields) >= 2 && fields[0] == '{' && fields[len(fields)-1] == '}' {
		fields = fields[1 : len(fields)-1]
	}
	if len(fields) > 0 {
		w.comma()
		w.buf.Write(fields)
	}
	return w
}

// EmbedFrom marshals a value and embeds its fields. This is how an event
// lays out its common part before its own fields.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	rawJSON, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal for embedding: %w", err)
		return w
	}
	return w.Embed(rawJSON)
}

// MarshalJSON closes the object and returns it. Satisfying json.Marshaler
// lets a writer stand in directly for the value it built.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	final := make([]byte, 0, w.buf.Len()+2)
	final = append(final, '{')
	final = append(final, w.buf.Bytes()...)
	final = append(final, '}')
	return final, nil
}
