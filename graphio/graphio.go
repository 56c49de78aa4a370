// SPDX-License-Identifier: MIT

// Package graphio reads edge lists and partitions from text and writes
// clusters back out.
//
// Edge list: one edge per line, two whitespace-separated vertex labels;
// further columns are ignored. Lines that are blank or start with '#' or
// '%' are skipped. Labels get dense ids in first-seen order. Self-loops and
// repeated edges are dropped and counted.
//
// Partition: one cluster per line, whitespace-separated labels.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/modclust/core"
	"github.com/katalvlaran/modclust/partition"
)

var (
	// ErrMalformedLine is returned for an edge line with fewer than two fields.
	ErrMalformedLine = errors.New("graphio: malformed line")

	// ErrUnknownLabel is returned when a partition names a vertex the
	// dataset does not have.
	ErrUnknownLabel = errors.New("graphio: unknown vertex label")
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Dataset is a parsed edge list.
type Dataset struct {
	Graph      *core.Graph
	Labels     []string // Labels[id] is the input label of vertex id
	SelfLoops  int
	Duplicates int

	index map[string]int
}

// ID returns the dense id of label.
func (d *Dataset) ID(label string) (int, bool) {
	id, ok := d.index[label]
	return id, ok
}

func (d *Dataset) intern(label string) int {
	if id, ok := d.index[label]; ok {
		return id
	}
	id := d.Graph.AddVertex()
	d.index[label] = id
	d.Labels = append(d.Labels, label)

	return id
}

// ReadEdgeList parses an undirected edge list from r.
// A self-loop still registers its vertex.
func ReadEdgeList(r io.Reader) (*Dataset, error) {
	g, _ := core.NewGraph(0)
	d := &Dataset{Graph: g, index: make(map[string]int)}

	sc := newScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields, skip := fieldsOf(sc.Text())
		if skip {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("ReadEdgeList: line %d: %q: %w", line, sc.Text(), ErrMalformedLine)
		}

		u := d.intern(fields[0])
		v := d.intern(fields[1])
		if u == v {
			d.SelfLoops++
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				d.Duplicates++
				continue
			}
			return nil, fmt.Errorf("ReadEdgeList: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	return d, nil
}

// ReadPartition parses one cluster per line, resolving labels through d.
// The result must cover every vertex of d exactly once.
func ReadPartition(r io.Reader, d *Dataset) (*partition.Partition, error) {
	var clusters [][]int

	sc := newScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields, skip := fieldsOf(sc.Text())
		if skip {
			continue
		}
		c := make([]int, len(fields))
		for k, label := range fields {
			id, ok := d.ID(label)
			if !ok {
				return nil, fmt.Errorf("ReadPartition: line %d: %q: %w", line, label, ErrUnknownLabel)
			}
			c[k] = id
		}
		clusters = append(clusters, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadPartition: %w", err)
	}

	p, err := partition.New(clusters, len(d.Labels))
	if err != nil {
		return nil, fmt.Errorf("ReadPartition: %w", err)
	}

	return p, nil
}

// WriteClusters writes one cluster per line. With labels == nil vertices
// are written as their dense ids.
func WriteClusters(w io.Writer, p *partition.Partition, labels []string) error {
	bw := bufio.NewWriter(w)
	for _, c := range p.Clusters() {
		for k, v := range c {
			if k > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			name := strconv.Itoa(v)
			if labels != nil {
				name = labels[v]
			}
			if _, err := bw.WriteString(name); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return sc
}

// fieldsOf splits a line, reporting blank and comment lines as skip.
func fieldsOf(raw string) ([]string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || line[0] == '#' || line[0] == '%' {
		return nil, true
	}

	return strings.Fields(line), false
}
