package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/scene-studio/pkg/math"
)

// OBJ format errors.
var (
	ErrOBJIndexOutOfRange = errors.New("index out of range")
	ErrOBJMalformedNumber = errors.New("malformed number")
	ErrOBJDegenerateFace  = errors.New("face needs at least 3 vertices")
)

// ParseError reports a problem at a specific line of a text format.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OBJ holds the raw attribute pools and faces of a Wavefront OBJ file.
// Attribute pools are 0-based; faces reference them by index.
type OBJ struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []OBJFace
}

// OBJFace is a polygon as written in the file (not yet triangulated).
type OBJFace struct {
	Line     int
	Vertices []OBJVertex
}

// OBJVertex is one corner of a face. Absent components are -1.
type OBJVertex struct {
	// Key identifies the v/vt/vn combination. It is the token exactly as
	// written unless the token uses relative (negative) indices, in which
	// case it is rewritten with absolute indices.
	Key string
	V   int
	VT  int
	VN  int
}

// ParseOBJ parses Wavefront OBJ text. Only geometry statements (v, vt, vn, f)
// are interpreted; grouping, smoothing and material statements are ignored.
func ParseOBJ(data []byte) (*OBJ, error) {
	obj := &OBJ{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3, lineNo, "vertex")
			if err != nil {
				return nil, err
			}
			obj.Positions = append(obj.Positions, math.Vec3{X: v[0], Y: v[1], Z: v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 1, lineNo, "texture coordinate")
			if err != nil {
				return nil, err
			}
			tc := math.Vec2{X: v[0]}
			if len(v) > 1 {
				tc.Y = v[1]
			}
			obj.TexCoords = append(obj.TexCoords, tc)

		case "vn":
			v, err := parseFloats(fields[1:], 3, lineNo, "normal")
			if err != nil {
				return nil, err
			}
			obj.Normals = append(obj.Normals, math.Vec3{X: v[0], Y: v[1], Z: v[2]})

		case "f":
			face, err := obj.parseFace(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			obj.Faces = append(obj.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning obj: %w", err)
	}

	return obj, nil
}

// TriangleCount returns the number of triangles fan triangulation produces.
func (o *OBJ) TriangleCount() int {
	n := 0
	for _, f := range o.Faces {
		n += len(f.Vertices) - 2
	}
	return n
}

// parseFloats parses at least want floats (extra components are kept).
func parseFloats(fields []string, want, line int, what string) ([]float32, error) {
	if len(fields) < want {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("%s needs %d components, got %d", what, want, len(fields))}
	}
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("%s component %q", what, f), Err: ErrOBJMalformedNumber}
		}
		out[i] = float32(v)
	}
	return out, nil
}

func (o *OBJ) parseFace(tokens []string, line int) (OBJFace, error) {
	if len(tokens) < 3 {
		return OBJFace{}, &ParseError{Line: line, Msg: fmt.Sprintf("face has %d vertices", len(tokens)), Err: ErrOBJDegenerateFace}
	}

	face := OBJFace{Line: line, Vertices: make([]OBJVertex, 0, len(tokens))}
	for _, tok := range tokens {
		v, err := o.parseFaceVertex(tok, line)
		if err != nil {
			return OBJFace{}, err
		}
		face.Vertices = append(face.Vertices, v)
	}
	return face, nil
}

// parseFaceVertex resolves a v, v/vt, v//vn or v/vt/vn token.
func (o *OBJ) parseFaceVertex(tok string, line int) (OBJVertex, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return OBJVertex{}, &ParseError{Line: line, Msg: fmt.Sprintf("face vertex %q has too many components", tok)}
	}

	pools := [3]struct {
		name  string
		count int
	}{
		{"position", len(o.Positions)},
		{"texture coordinate", len(o.TexCoords)},
		{"normal", len(o.Normals)},
	}

	idx := [3]int{-1, -1, -1}
	relative := false
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				return OBJVertex{}, &ParseError{Line: line, Msg: fmt.Sprintf("face vertex %q has no position", tok)}
			}
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return OBJVertex{}, &ParseError{Line: line, Msg: fmt.Sprintf("face index %q", p), Err: ErrOBJMalformedNumber}
		}

		count := pools[i].count
		switch {
		case n > 0:
			n--
		case n < 0:
			relative = true
			n += count
		default:
			return OBJVertex{}, &ParseError{Line: line, Msg: fmt.Sprintf("%s index 0 in %q", pools[i].name, tok), Err: ErrOBJIndexOutOfRange}
		}
		if n < 0 || n >= count {
			return OBJVertex{}, &ParseError{
				Line: line,
				Msg:  fmt.Sprintf("%s index %s in %q (have %d)", pools[i].name, p, tok, count),
				Err:  ErrOBJIndexOutOfRange,
			}
		}
		idx[i] = n
	}

	key := tok
	if relative {
		key = canonicalKey(idx, len(parts))
	}
	return OBJVertex{Key: key, V: idx[0], VT: idx[1], VN: idx[2]}, nil
}

// canonicalKey writes 0-based indices back as a 1-based token with the
// given number of fields, so "-1" and "3" key the same vertex.
func canonicalKey(idx [3]int, fields int) string {
	var sb strings.Builder
	for i, n := range idx[:fields] {
		if i > 0 {
			sb.WriteByte('/')
		}
		if n >= 0 {
			sb.WriteString(strconv.Itoa(n + 1))
		}
	}
	return sb.String()
}
