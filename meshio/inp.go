package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/sdfx-labs/tetvox/vec/v3"
)

//-----------------------------------------------------------------------------

// ReadTetMesh reads a CalculiX/Abaqus .inp deck from path and returns its
// tetrahedral mesh. Only *NODE and *ELEMENT, TYPE=C3D4 sections are
// recognized; every other keyword section (boundary conditions, loads,
// material cards, other element types) is skipped. Records use the
// usual .inp node/element format: 1-based comma-separated "id,x,y,z"
// node records and "id,n1,n2,n3,n4" element records.
func ReadTetMesh(path string) (*TetMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: opening %s: %w", path, err)
	}
	defer f.Close()
	return parseTetMesh(f)
}

type section int

const (
	sectionNone section = iota
	sectionNode
	sectionElementC3D4
	sectionOther
)

// parseTetMesh does the actual parsing, factored out of ReadTetMesh so
// tests can exercise it against an in-memory reader.
func parseTetMesh(r io.Reader) (*TetMesh, error) {
	m := &TetMesh{}
	nodeByID := map[int]int{} // 1-based .inp node ID -> index into m.Nodes

	sc := bufio.NewScanner(r)
	cur := sectionNone
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "**") {
			continue // comment
		}

		if strings.HasPrefix(line, "*") {
			cur = classifyKeyword(line)
			continue
		}

		switch cur {
		case sectionNode:
			if err := parseNodeLine(line, m, nodeByID); err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
		case sectionElementC3D4:
			if err := parseElementLine(line, m, nodeByID); err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("meshio: reading input: %w", err)
	}

	return m, nil
}

func classifyKeyword(line string) section {
	upper := strings.ToUpper(line)
	switch {
	case strings.HasPrefix(upper, "*NODE"):
		return sectionNode
	case strings.HasPrefix(upper, "*ELEMENT"):
		for _, field := range strings.Split(upper, ",") {
			kv := strings.SplitN(strings.TrimSpace(field), "=", 2)
			if len(kv) == 2 && strings.TrimSpace(kv[0]) == "TYPE" && strings.TrimSpace(kv[1]) == "C3D4" {
				return sectionElementC3D4
			}
		}
		return sectionOther
	default:
		return sectionOther
	}
}

func parseNodeLine(line string, m *TetMesh, nodeByID map[int]int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return fmt.Errorf("malformed *NODE record %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return fmt.Errorf("node ID: %w", err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return fmt.Errorf("node x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return fmt.Errorf("node y: %w", err)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return fmt.Errorf("node z: %w", err)
	}
	nodeByID[id] = len(m.Nodes)
	m.Nodes = append(m.Nodes, v3.Vec{X: x, Y: y, Z: z})
	return nil
}

func parseElementLine(line string, m *TetMesh, nodeByID map[int]int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return fmt.Errorf("malformed C3D4 *ELEMENT record %q", line)
	}
	var el [4]int
	for n := 0; n < 4; n++ {
		id, err := strconv.Atoi(strings.TrimSpace(fields[n+1]))
		if err != nil {
			return fmt.Errorf("element node reference: %w", err)
		}
		idx, ok := nodeByID[id]
		if !ok {
			return fmt.Errorf("element references undefined node %d", id)
		}
		el[n] = idx
	}
	m.Elements = append(m.Elements, el)
	return nil
}
