package ioformats

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RandyRDavila/GraphCalc/core"
)

// ReadAdjacencyMatrix reads a square 0/1 adjacency matrix (comma or
// whitespace separated, sniffed from the first non-empty line) into a new
// Graph with vertices named v0..v(n-1). The matrix must be symmetric with
// a zero diagonal; a nonzero diagonal entry is reported as a self-loop
// error from the underlying AddEdge call.
func ReadAdjacencyMatrix(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformats: reading adjacency matrix: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return core.NewGraph(), nil
	}

	var rows [][]string
	if strings.Contains(strings.SplitN(text, "\n", 2)[0], ",") {
		cr := csv.NewReader(strings.NewReader(text))
		cr.FieldsPerRecord = -1
		rows, err = cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("ioformats: reading adjacency matrix csv: %w", err)
		}
	} else {
		scanner := bufio.NewScanner(strings.NewReader(text))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			rows = append(rows, strings.Fields(line))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("ioformats: reading adjacency matrix: %w", err)
		}
	}

	n := len(rows)
	g := core.NewGraph(core.WithCapacityHint(n))
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("v%d", i)
		_ = g.AddVertex(names[i])
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("ioformats: adjacency matrix row %d has %d entries, want %d", i, len(row), n)
		}
		for j := i; j < n; j++ {
			val, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("ioformats: adjacency matrix entry (%d,%d): %w", i, j, err)
			}
			if val != 0 {
				if err := g.AddEdge(names[i], names[j]); err != nil {
					return nil, fmt.Errorf("ioformats: adjacency matrix entry (%d,%d): %w", i, j, err)
				}
			}
		}
	}
	return g, nil
}
