package entry

import (
	"bytes"
	"sort"

	"github.com/bytedance/sonic"
)

// Sort orders entries ascending by parsed date. Entries whose date cannot be
// parsed go last; ties keep their insertion order.
func Sort(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		lt, lok := entries[i].When()
		rt, rok := entries[j].When()
		switch {
		case !lok && !rok:
			return false
		case !lok:
			return false
		case !rok:
			return true
		default:
			return lt.Before(rt)
		}
	})
}

// IsSorted reports whether entries already satisfy the Sort order.
func IsSorted(entries []*Entry) bool {
	for i := 1; i < len(entries); i++ {
		prev, pok := entries[i-1].When()
		cur, cok := entries[i].When()
		if !pok && cok {
			return false
		}
		if pok && cok && cur.Before(prev) {
			return false
		}
	}
	return true
}

// Marshal serialises the whole list as a JSON array.
func Marshal(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return sonic.ConfigStd.Marshal(entries)
}

// Unmarshal decodes a JSON array of entries. Empty input and JSON null both
// decode to an empty list; nil elements are dropped.
func Unmarshal(data []byte) ([]*Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []*Entry{}, nil
	}
	var raw []*Entry
	if err := sonic.ConfigStd.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	list := make([]*Entry, 0, len(raw))
	for _, e := range raw {
		if e != nil {
			list = append(list, e)
		}
	}
	return list, nil
}
