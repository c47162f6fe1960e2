package reader

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"fmt"
	"io"
)

// filterFunc decodes one stage of a filter chain. parms is the stage's
// /DecodeParms dictionary and may be nil.
type filterFunc func(data []byte, parms Dict) ([]byte, error)

var filters = map[Name]filterFunc{
	"FlateDecode":     inflate,
	"Fl":              inflate,
	"ASCIIHexDecode":  fromHex,
	"AHx":             fromHex,
	"ASCII85Decode":   fromASCII85,
	"A85":             fromASCII85,
	"RunLengthDecode": fromRunLength,
	"RL":              fromRunLength,
}

// decodeStream runs the stream data through its /Filter chain.
func decodeStream(s Stream) ([]byte, error) {
	names, parms, err := filterChain(s.Dict)
	if err != nil {
		return nil, err
	}
	data := s.Data
	for i, name := range names {
		f, ok := filters[name]
		if !ok {
			return nil, fmt.Errorf("reader: unsupported filter /%s", name)
		}
		if data, err = f(data, parms[i]); err != nil {
			return nil, fmt.Errorf("reader: /%s: %w", name, err)
		}
	}
	return data, nil
}

// filterChain returns the filter names of d with their decode parameters.
func filterChain(d Dict) ([]Name, []Dict, error) {
	var names []Name
	switch f := d["Filter"].(type) {
	case nil:
		return nil, nil, nil
	case Name:
		names = []Name{f}
	case Array:
		for _, o := range f {
			n, ok := o.(Name)
			if !ok {
				return nil, nil, fmt.Errorf("reader: /Filter entry is %T", o)
			}
			names = append(names, n)
		}
	default:
		return nil, nil, fmt.Errorf("reader: /Filter is %T", f)
	}

	parms := make([]Dict, len(names))
	switch p := d["DecodeParms"].(type) {
	case Dict:
		if len(parms) > 0 {
			parms[0] = p
		}
	case Array:
		for i, o := range p {
			if pd, ok := o.(Dict); ok && i < len(parms) {
				parms[i] = pd
			}
		}
	}
	return names, parms, nil
}

func inflate(data []byte, parms Dict) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return unpredict(out, parms)
}

// unpredict reverses the PNG row filters selected by /Predictor 10-15.
// Cross-reference and object streams from most writers use them.
func unpredict(data []byte, parms Dict) ([]byte, error) {
	pred := intOr(parms, "Predictor", 1)
	switch {
	case pred <= 1:
		return data, nil
	case pred < 10:
		return nil, fmt.Errorf("predictor %d not supported", pred)
	}
	colors := intOr(parms, "Colors", 1)
	bpc := intOr(parms, "BitsPerComponent", 8)
	bpp := max(1, colors*bpc/8)
	stride := (intOr(parms, "Columns", 1)*colors*bpc + 7) / 8
	if stride <= 0 || len(data)%(stride+1) != 0 {
		return nil, fmt.Errorf("%d bytes do not divide into rows of %d", len(data), stride+1)
	}

	out := make([]byte, 0, len(data)/(stride+1)*stride)
	prev := make([]byte, stride)
	for rows := data; len(rows) > 0; rows = rows[stride+1:] {
		kind, row := rows[0], rows[1:stride+1]
		for i := range row {
			var left, upLeft byte
			if i >= bpp {
				left, upLeft = row[i-bpp], prev[i-bpp]
			}
			up := prev[i]
			switch kind {
			case 0:
			case 1:
				row[i] += left
			case 2:
				row[i] += up
			case 3:
				row[i] += byte((int(left) + int(up)) / 2)
			case 4:
				row[i] += paeth(left, up, upLeft)
			default:
				return nil, fmt.Errorf("unknown PNG filter type %d", kind)
			}
		}
		out = append(out, row...)
		prev = row
	}
	return out, nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := absInt(p-int(a)), absInt(p-int(b)), absInt(p-int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func intOr(d Dict, key Name, def int) int {
	if v, ok := d.GetInt(key); ok {
		return int(v)
	}
	return def
}

func fromHex(data []byte, _ Dict) ([]byte, error) {
	if i := bytes.IndexByte(data, '>'); i >= 0 {
		data = data[:i]
	}
	out := make([]byte, 0, len(data)/2)
	hi := -1
	for _, c := range data {
		v := unhex(c)
		switch {
		case v < 0 && class[c] == space:
		case v < 0:
			return nil, fmt.Errorf("invalid hex digit %q", c)
		case hi < 0:
			hi = v
		default:
			out = append(out, byte(hi<<4|v))
			hi = -1
		}
	}
	if hi >= 0 {
		out = append(out, byte(hi<<4))
	}
	return out, nil
}

func fromASCII85(data []byte, _ Dict) ([]byte, error) {
	data = bytes.TrimPrefix(bytes.TrimSpace(data), []byte("<~"))
	if i := bytes.Index(data, []byte("~>")); i >= 0 {
		data = data[:i]
	}
	return io.ReadAll(ascii85.NewDecoder(bytes.NewReader(data)))
}

func fromRunLength(data []byte, _ Dict) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); {
		n := int(data[i])
		i++
		switch {
		case n == 128:
			return out, nil
		case n < 128:
			if i+n+1 > len(data) {
				return nil, fmt.Errorf("run-length literal truncated")
			}
			out = append(out, data[i:i+n+1]...)
			i += n + 1
		default:
			if i >= len(data) {
				return nil, fmt.Errorf("run-length repeat truncated")
			}
			out = append(out, bytes.Repeat(data[i:i+1], 257-n)...)
			i++
		}
	}
	return out, nil
}
