// Package yamlconv bridges YAML documents into the IR and back. Mapping
// order is preserved both ways; YAML keys must be strings.
package yamlconv

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/tinyjson/go-tinyjson/ir"
)

// Parse decodes a YAML document into an IR tree. YAML integers and floats
// both land as numbers.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromGo(v)
}

// Document is raw YAML implementing ir.Converter.
type Document []byte

func (d Document) ToJSON() (*ir.Node, error) {
	return Parse(d)
}

// Marshal renders node as YAML. Integral numbers are written without a
// fractional part.
func Marshal(node *ir.Node) ([]byte, error) {
	v, err := toGo(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func fromGo(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case string:
		return ir.FromString(t), nil
	case []any:
		elts := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := fromGo(e)
			if err != nil {
				return nil, err
			}
			elts[i] = n
		}
		return ir.FromSlice(elts), nil
	case yaml.MapSlice:
		obj := ir.Object()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported mapping key type %T", item.Key)
			}
			val, err := fromGo(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", t)
	}
}

func toGo(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if f := node.Number; f == float64(int64(f)) {
			return int64(f), nil
		}
		return node.Number, nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		elts := make([]any, len(node.Values))
		for i, e := range node.Values {
			v, err := toGo(e)
			if err != nil {
				return nil, err
			}
			elts[i] = v
		}
		return elts, nil
	case ir.ObjectType:
		m := make(yaml.MapSlice, len(node.Fields))
		for i, k := range node.Fields {
			v, err := toGo(node.Values[i])
			if err != nil {
				return nil, err
			}
			m[i] = yaml.MapItem{Key: k, Value: v}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported node type %d", node.Type)
	}
}
