package elimu

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// The backend wraps payloads inconsistently: sometimes {"data":{"book":{...}}},
// sometimes {"book":{...}}, sometimes the bare object, and list endpoints may
// return a bare array. Everything is normalized here so the services never
// repeat defensive unwrapping.

// unwrapData strips a {"data": ...} wrapper when present
func unwrapData(raw json.RawMessage) json.RawMessage {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Data) > 0 {
		return wrapper.Data
	}
	return raw
}

// decodeObject unmarshals a single-entity payload into out, looking for the
// named member first and falling back to the payload itself.
func decodeObject(raw json.RawMessage, key string, out interface{}) error {
	payload := unwrapData(raw)

	var members map[string]json.RawMessage
	if err := json.Unmarshal(payload, &members); err != nil {
		return errors.Wrap(err, "malformed response")
	}

	if inner, ok := members[key]; ok && !isNull(inner) {
		return errors.Wrapf(json.Unmarshal(inner, out), "malformed %s payload", key)
	}

	return errors.Wrapf(json.Unmarshal(payload, out), "malformed %s payload", key)
}

// decodeList unmarshals a collection payload into items and returns the
// pagination block when the backend sent one.
func decodeList(raw json.RawMessage, key string, items interface{}) (*Pagination, error) {
	payload := bytes.TrimSpace(unwrapData(raw))

	// Bare array
	if len(payload) > 0 && payload[0] == '[' {
		if err := json.Unmarshal(payload, items); err != nil {
			return nil, errors.Wrapf(err, "malformed %s list", key)
		}
		return nil, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(payload, &members); err != nil {
		return nil, errors.Wrap(err, "malformed list response")
	}

	member, ok := members[key]
	if !ok {
		member, ok = members["items"]
	}
	if !ok {
		return nil, errors.Errorf("response has no %q member", key)
	}
	if err := json.Unmarshal(member, items); err != nil {
		return nil, errors.Wrapf(err, "malformed %s list", key)
	}

	var pg *Pagination
	if rawPg, ok := members["pagination"]; ok && !isNull(rawPg) {
		pg = &Pagination{}
		if err := json.Unmarshal(rawPg, pg); err != nil {
			return nil, errors.Wrap(err, "malformed pagination")
		}
	} else if _, ok := members["total"]; ok {
		// Flat pagination fields alongside the items
		pg = &Pagination{}
		if err := json.Unmarshal(payload, pg); err != nil {
			return nil, errors.Wrap(err, "malformed pagination")
		}
	}

	return pg, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// StringList tolerates the two encodings the backend uses for tag fields: a
// JSON array of strings or a JSON-encoded string holding such an array.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler for StringList
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if isNull(data) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var vals []string
		if err := json.Unmarshal(data, &vals); err != nil {
			return err
		}
		*l = vals
		return nil
	}

	// Double-encoded: a string containing the array
	var inner string
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	if inner == "" {
		*l = nil
		return nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(inner), &vals); err != nil {
		// A plain string becomes a single-element list
		*l = StringList{inner}
		return nil
	}
	*l = vals
	return nil
}
