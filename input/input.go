package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/format"
	"github.com/signadot/jsonenc/gomap"
	"github.com/vmihailenco/msgpack/v5"
)

type loadOpts struct {
	format    format.Format
	formatSet bool
}

type LoadOption func(*loadOpts)

// LoadFormat sets the document format. Without it Load reads JSON and
// LoadFile guesses from the file suffix.
func LoadFormat(f format.Format) LoadOption {
	return func(o *loadOpts) {
		o.format = f
		o.formatSet = true
	}
}

// Load reads every document in r.
//
// JSON input is a stream of values, such as newline delimited JSON. YAML
// documents are separated by "---". MessagePack input is a sequence of
// encoded values.
func Load(r io.Reader, opts ...LoadOption) ([]any, error) {
	o := &loadOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var (
		docs []any
		err  error
	)
	switch o.format {
	case format.JSONFormat:
		docs, err = loadJSON(r)
	case format.YAMLFormat:
		docs, err = loadYAML(r)
	case format.MsgpackFormat:
		docs, err = loadMsgpack(r)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, o.format)
	}
	if debug.Load() {
		debug.Logf("load: format=%s docs=%d err=%v\n", o.format, len(docs), err)
	}
	return docs, err
}

// LoadFile loads the documents in the file at path.
func LoadFile(path string, opts ...LoadOption) ([]any, error) {
	o := &loadOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if !o.formatSet {
		if f, ok := format.FromSuffix(filepath.Ext(path)); ok {
			opts = append(opts, LoadFormat(f))
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	docs, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return docs, nil
}

// LoadBytes loads a single document from d.
func LoadBytes(d []byte, opts ...LoadOption) (any, error) {
	docs, err := Load(bytes.NewReader(d), opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, io.ErrUnexpectedEOF
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("expected 1 document, got %d", len(docs))
	}
}

func loadJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []any
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}

// jsonValue reads the value starting at tok. Objects keep their key order
// and repeated keys.
func jsonValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := gomap.Ordered{}
			for dec.More() {
				kt, err := midToken(dec)
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				v, err := nextJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, gomap.Pair{Key: k, Value: v})
			}
			if err := endJSON(dec); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := []any{}
			for dec.More() {
				v, err := nextJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			if err := endJSON(dec); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected %v", x)
		}
	case json.Number:
		return parseNumber(x)
	default:
		// string, bool or nil
		return x, nil
	}
}

func nextJSONValue(dec *json.Decoder) (any, error) {
	tok, err := midToken(dec)
	if err != nil {
		return nil, err
	}
	return jsonValue(dec, tok)
}

// endJSON consumes the delimiter closing an object or array.
func endJSON(dec *json.Decoder) error {
	_, err := midToken(dec)
	return err
}

// midToken reads a token inside a value, where EOF means truncated input.
func midToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// parseNumber gives integers as int64, or uint64 above math.MaxInt64, and
// everything else, including -0 and integers too large for uint64, as
// float64.
func parseNumber(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") && s != "-0" {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", s, err)
	}
	return f, nil
}

func loadYAML(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	var docs []any
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		docs = append(docs, normalize(v))
	}
}

func loadMsgpack(r io.Reader) ([]any, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetMapDecoder(decodeOrderedMap)
	var docs []any
	for {
		v, err := dec.DecodeInterface()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, err
		}
		docs = append(docs, normalize(v))
	}
}

func decodeOrderedMap(d *msgpack.Decoder) (any, error) {
	n, err := d.DecodeMapLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	res := make(gomap.Ordered, 0, n)
	for i := 0; i < n; i++ {
		k, err := d.DecodeInterface()
		if err != nil {
			return nil, err
		}
		v, err := d.DecodeInterface()
		if err != nil {
			return nil, err
		}
		res = append(res, gomap.Pair{Key: k, Value: v})
	}
	return res, nil
}

// normalize replaces decoder specific map types with gomap.Ordered and
// integers with int64 or uint64.
func normalize(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(gomap.Ordered, len(x))
		for i := range x {
			res[i] = gomap.Pair{Key: normalize(x[i].Key), Value: normalize(x[i].Value)}
		}
		return res
	case gomap.Ordered:
		res := make(gomap.Ordered, len(x))
		for i := range x {
			res[i] = gomap.Pair{Key: normalize(x[i].Key), Value: normalize(x[i].Value)}
		}
		return res
	case map[string]any:
		res := make(gomap.Ordered, 0, len(x))
		for k, e := range x {
			res = append(res, gomap.Pair{Key: k, Value: normalize(e)})
		}
		slices.SortFunc(res, func(a, b gomap.Pair) int {
			return cmpKey(a.Key, b.Key)
		})
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = normalize(x[i])
		}
		return res
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return fromUint(x)
	default:
		return v
	}
}

func fromUint(v uint64) any {
	if v > math.MaxInt64 {
		return v
	}
	return int64(v)
}

func cmpKey(a, b any) int {
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}
