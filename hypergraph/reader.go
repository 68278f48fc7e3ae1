// SPDX-License-Identifier: MIT
// Package: treedec/hypergraph
//
// reader.go — PACE challenge input formats.
//
// Supported problem lines:
//   - "p tw <n> <m>"  (treewidth track): m lines "<u> <v>".
//   - "p htd <n> <m>" (hypertree track): m lines "<id> <v1> … <vk>".
// Comment lines start with "c"; blank lines are ignored. Vertices are
// numbered 1..n and map one-to-one onto the IDs handed out by AddVertices.

package hypergraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrParse indicates malformed PACE input. The wrapping error names the line.
var ErrParse = errors.New("hypergraph: parse error")

const (
	formatTreewidth = "tw"
	formatHypertree = "htd"
)

// ReadPACE parses a PACE .gr or .hgr stream into a new Hypergraph.
//
// Errors:
//   - ErrParse (wrapped with the 1-based line number) on malformed input,
//     missing problem line, out-of-range vertices or an edge count mismatch.
func ReadPACE(r io.Reader) (*Hypergraph, error) {
	var (
		h      *Hypergraph
		format string
		want   int
		seen   int
		line   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		fields := strings.Fields(text)
		if fields[0] == "p" {
			if h != nil {
				return nil, parseErrorf(line, "duplicate problem line")
			}
			if len(fields) != 4 || (fields[1] != formatTreewidth && fields[1] != formatHypertree) {
				return nil, parseErrorf(line, "expected \"p tw|htd <n> <m>\", got %q", text)
			}
			// Vertices are numbered 1..n as uint32.
			n, err := strconv.ParseUint(fields[2], 10, 32)
			if err != nil {
				return nil, parseErrorf(line, "bad vertex count %q", fields[2])
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil || m < 0 {
				return nil, parseErrorf(line, "bad edge count %q", fields[3])
			}
			format, want = fields[1], m
			h = New()
			h.AddVertices(int(n))
			continue
		}
		if h == nil {
			return nil, parseErrorf(line, "edge before problem line")
		}
		nums, err := parseUints(fields)
		if err != nil {
			return nil, parseErrorf(line, "%v", err)
		}
		switch format {
		case formatTreewidth:
			if len(nums) != 2 {
				return nil, parseErrorf(line, "expected 2 endpoints, got %d", len(nums))
			}
			if _, err = h.AddEdge(Vertex(nums[0]), Vertex(nums[1])); err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
		case formatHypertree:
			if len(nums) < 2 {
				return nil, parseErrorf(line, "hyperedge without endpoints")
			}
			elements := make([]Vertex, len(nums)-1)
			for i, x := range nums[1:] {
				elements[i] = Vertex(x)
			}
			if err = h.AddEdgeWithID(EdgeID(nums[0]), elements...); err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
		}
		seen++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadPACE: %w", err)
	}
	if h == nil {
		return nil, parseErrorf(line, "missing problem line")
	}
	if seen != want {
		return nil, parseErrorf(line, "expected %d edges, read %d", want, seen)
	}

	return h, nil
}

func parseUints(fields []string) ([]uint32, error) {
	out := make([]uint32, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		out[i] = uint32(x)
	}

	return out, nil
}

func parseErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("ReadPACE: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrParse)
}
