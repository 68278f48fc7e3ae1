package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/treedec/decomposition"
)

// writeTD writes d in the PACE .td format. Bags are numbered 1..k in
// ascending node ID order.
func writeTD(w io.Writer, d decomposition.Decomposition, vertices int) error {
	nodes := d.Nodes()
	index := make(map[decomposition.NodeID]int, len(nodes))
	maxBag := 0
	for i, id := range nodes {
		index[id] = i + 1
		maxBag = max(maxBag, len(d.Bag(id)))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "s td %d %d %d\n", len(nodes), maxBag, vertices)
	for _, id := range nodes {
		fmt.Fprintf(bw, "b %d", index[id])
		for _, v := range d.Bag(id) {
			fmt.Fprintf(bw, " %d", v)
		}
		fmt.Fprintln(bw)
	}
	for _, id := range nodes {
		for _, n := range d.Neighbors(id) {
			if index[n] > index[id] {
				fmt.Fprintf(bw, "%d %d\n", index[id], index[n])
			}
		}
	}

	return errors.Wrap(bw.Flush(), "write td")
}

func writeTDFile(path string, stdout io.Writer, r result) error {
	if path == "-" {
		return writeTD(stdout, r.d, r.vertices)
	}
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create td file")
	}
	if err = writeTD(fh, r.d, r.vertices); err != nil {
		_ = fh.Close()
		return err
	}

	return errors.Wrap(fh.Close(), "close td file")
}
