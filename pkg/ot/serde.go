package ot

import (
	"encoding/json"
	"fmt"
)

// JSON wire format (spec §6, matching the ShareJS/ottypes text0 corpora):
//
//	non-negative integer n  -> Skip(n)
//	string s                -> Insert(s)
//	{"d": n}                -> Delete(n)
//	{"i": s}                -> Insert(s)  (accepted on read only; a few
//	                                       historical corpora use this
//	                                       object form instead of a bare
//	                                       string)
//
// Example: [5, "hello", {"d": 3}, 10]
//   = Skip(5), Insert("hello"), Delete(3), Skip(10)

// MarshalJSON implements json.Marshaler for Operation.
func (op Operation) MarshalJSON() ([]byte, error) {
	raw := make([]interface{}, len(op))
	for i, c := range op {
		switch c.Kind {
		case KindSkip:
			raw[i] = c.N
		case KindInsert:
			raw[i] = c.Text
		case KindDelete:
			raw[i] = map[string]int{"d": c.N}
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler for Operation. The result is
// normalized: a wire operation need not already satisfy the merge/trim
// invariants.
func (op *Operation) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	components := make(Operation, 0, len(raw))
	for _, item := range raw {
		c, err := componentFromJSON(item)
		if err != nil {
			return err
		}
		components = Append(components, c)
	}
	*op = trimTrailingSkip(components)
	return nil
}

func componentFromJSON(item interface{}) (Component, error) {
	switch v := item.(type) {
	case string:
		return Insert(v), nil
	case float64:
		if v < 0 {
			return Component{}, fmt.Errorf("ot: negative skip length %v in wire operation", v)
		}
		return Skip(int(v)), nil
	case map[string]interface{}:
		if d, ok := v["d"]; ok {
			n, ok := d.(float64)
			if !ok {
				return Component{}, fmt.Errorf("ot: delete count %v is not a number", d)
			}
			return Delete(int(n)), nil
		}
		if ins, ok := v["i"]; ok {
			s, ok := ins.(string)
			if !ok {
				return Component{}, fmt.Errorf("ot: insert text %v is not a string", ins)
			}
			return Insert(s), nil
		}
		return Component{}, fmt.Errorf("ot: object component %v has neither \"d\" nor \"i\"", v)
	default:
		return Component{}, fmt.Errorf("ot: invalid component type %T", item)
	}
}
