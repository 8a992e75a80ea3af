// Package ioformats reads graphs from the plain-text formats spec.md §6
// names as the library's file-format collaborator: CSV and whitespace
// edge lists, and adjacency matrices. No ecosystem CSV/graph-file library
// appears anywhere in the example pack (checked alongside DESIGN.md's
// survey), so this package uses encoding/csv and bufio directly — a
// justified stdlib use recorded in DESIGN.md.
package ioformats

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/RandyRDavila/GraphCalc/core"
)

// ReadEdgeListCSV reads a "Source,Target" header CSV edge list into a new
// Graph.
func ReadEdgeListCSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ioformats: reading edge list csv: %w", err)
	}
	g := core.NewGraph()
	for i, row := range rows {
		if i == 0 && len(row) >= 2 && strings.EqualFold(row[0], "source") {
			continue
		}
		if len(row) < 2 {
			continue
		}
		if err := g.AddEdge(strings.TrimSpace(row[0]), strings.TrimSpace(row[1])); err != nil {
			return nil, fmt.Errorf("ioformats: edge list csv row %d: %w", i, err)
		}
	}
	return g, nil
}

// ReadEdgeListTXT reads a whitespace-separated "u v" edge list, one edge
// per line, into a new Graph. Blank lines are skipped.
func ReadEdgeListTXT(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformats: edge list txt line %d: expected 2 fields, got %d", line, len(fields))
		}
		if err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("ioformats: edge list txt line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformats: reading edge list txt: %w", err)
	}
	return g, nil
}
