package array

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// dense reports whether a has neither gaps nor associative entries, in
// which case it encodes as a plain list.
func (a *Array[T]) dense() bool {
	if len(a.assoc) > 0 {
		return false
	}
	for _, s := range a.slots {
		if !s.set {
			return false
		}
	}
	return true
}

// ToJSON serialises a. A dense array (no gaps, no associative entries)
// becomes a JSON array; anything else becomes a JSON object whose members
// follow iteration order, with ordered keys written in decimal.
//
//	array.New(1, 2).ToJSON()                             // → [1,2]
//	array.New(1).Set(array.Name("x"), 2).ToJSON()        // → {"0":1,"x":2}
func (a *Array[T]) ToJSON() ([]byte, error) {
	if a.dense() {
		return json.Marshal(a.ToSlice())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	first := true
	a.Each(func(v T, k Key) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		var kb, vb []byte
		if kb, err = json.Marshal(k.String()); err != nil {
			return false
		}
		if vb, err = json.Marshal(v); err != nil {
			err = fmt.Errorf("array: encoding key %s: %w", k, err)
			return false
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler] via [Array.ToJSON].
func (a *Array[T]) MarshalJSON() ([]byte, error) { return a.ToJSON() }

// MarshalYAML implements [yaml.Marshaler]. A dense array becomes a
// sequence; anything else becomes a mapping in iteration order, with
// ordered keys as integers and associative keys as strings.
func (a *Array[T]) MarshalYAML() (any, error) {
	if a.dense() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, v := range a.ToSlice() {
			n, err := yamlNode(v)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	a.Each(func(v T, k Key) bool {
		var kn, vn *yaml.Node
		if i, ok := k.Int(); ok {
			kn, err = yamlNode(i)
		} else {
			kn, err = yamlNode(k.String())
		}
		if err != nil {
			return false
		}
		if vn, err = yamlNode(v); err != nil {
			err = fmt.Errorf("array: encoding key %s: %w", k, err)
			return false
		}
		m.Content = append(m.Content, kn, vn)
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func yamlNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
