// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/searchtree/avl"
	"github.com/bitmark-inc/searchtree/bst"
	"github.com/bitmark-inc/searchtree/fault"
	"github.com/bitmark-inc/searchtree/search"
)

type runner struct {
	log       *logger.L
	treeLog   *logger.L
	printTree bool
}

// load the entries, apply the updates, run the lookups then report
func (r *runner) run(w io.Writer, c *Configuration) error {
	var tree search.SearchTree[string]
	var balanced *avl.Tree[string]

	switch c.Variant {
	case variantAVL:
		balanced = avl.New[string]()
		balanced.SetLog(r.treeLog)
		tree = balanced
	case variantBST:
		tree = bst.New[string]()
	default:
		return fault.ErrUnknownVariant
	}

	r.log.Infof("loading: %d entries into: %s tree", len(c.Entries), c.Variant)
	for _, e := range c.Entries {
		search.Add(tree, e.Key, e.Value)
	}

	for _, u := range c.Updates {
		err := search.Update(tree, u.Key, u.Value)
		if fault.IsErrNotFound(err) {
			r.log.Warnf("update: %s", err)
			fmt.Fprintf(w, "update: %q not found\n", u.Key)
			continue
		}
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "update: %q → %q\n", u.Key, u.Value)
	}

	for _, key := range c.Lookups {
		if v, ok := search.FindAndClone(tree, key); ok {
			fmt.Fprintf(w, "lookup: %q → %q\n", key, v)
		} else {
			fmt.Fprintf(w, "lookup: %q not found\n", key)
		}
	}

	if err := search.Check(tree, nil != balanced); nil != err {
		return err
	}

	search.Dump(w, tree)
	if r.printTree {
		search.Print(w, tree, true)
	}

	fmt.Fprintf(w, "count: %d  height: %d\n", tree.Arena().Len(), search.Height(tree))
	if min, ok := search.MinVal(tree); ok {
		max, _ := search.MaxVal(tree)
		fmt.Fprintf(w, "min: %q  max: %q\n", min.Get(), max.Get())
	}

	if nil != balanced {
		s := balanced.Stats()
		r.log.Infof("stats: %+v", s)
		fmt.Fprintf(w, "checks: %d  rotations: %d (single-right: %d  double-right: %d  single-left: %d  double-left: %d)\n",
			s.Checks, s.Rotations(), s.SingleRight, s.DoubleRight, s.SingleLeft, s.DoubleLeft)
	}
	return nil
}
