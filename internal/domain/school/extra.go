package school

import "encoding/json"

// Spreadsheet-imported records carry variable columns beyond the core
// schema. Those land in the Extra map and are round-tripped flat inside the
// record object, so persisted data stays compatible with files produced
// before a column became part of the core schema.

func (s Student) MarshalJSON() ([]byte, error) {
	type plain Student
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *Student) UnmarshalJSON(data []byte) error {
	type plain Student
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*s = Student(p)
	s.Extra = extra
	return nil
}

func (s Staff) MarshalJSON() ([]byte, error) {
	type plain Staff
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *Staff) UnmarshalJSON(data []byte) error {
	type plain Staff
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	*s = Staff(p)
	s.Extra = extra
	return nil
}

// marshalWithExtra merges extra columns into the marshalled core object.
// Core fields win on key collision.
func marshalWithExtra(core any, extra map[string]string) ([]byte, error) {
	data, err := json.Marshal(core)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return data, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// unmarshalWithExtra decodes core fields into core and returns any remaining
// keys as the extra map. Non-string extra values keep their raw JSON text.
func unmarshalWithExtra(data []byte, core any) (map[string]string, error) {
	if err := json.Unmarshal(data, core); err != nil {
		return nil, err
	}

	// The core's own marshalled keys define the known set.
	knownData, err := json.Marshal(core)
	if err != nil {
		return nil, err
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(knownData, &known); err != nil {
		return nil, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	var extra map[string]string
	for key, raw := range all {
		if _, ok := known[key]; ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			value = string(raw)
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[key] = value
	}
	return extra, nil
}
