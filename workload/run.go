// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/item"
)

// Report - tallies from one workload run
type Report struct {
	Inserts    int `json:"inserts"`
	Overwrites int `json:"overwrites"`
	Removes    int `json:"removes"`
	Misses     int `json:"misses"`
	Audits     int `json:"audits"`
	PeakCount  int `json:"peakCount"`
	PeakHeight int `json:"peakHeight"`
}

// String - one line summary
func (r *Report) String() string {
	return fmt.Sprintf("inserts: %d  overwrites: %d  removes: %d  misses: %d  audits: %d  peak count: %d  peak height: %d",
		r.Inserts, r.Overwrites, r.Removes, r.Misses, r.Audits, r.PeakCount, r.PeakHeight)
}

// state of a single run
type runner struct {
	log       *logger.L
	conf      Configuration
	tree      *avl.Tree
	reference map[int]int64
	keys      map[int]avl.Item
	report    Report
}

// Run - execute a generated workload against a new tree
//
// the tree is emptied key by key at the end, so a successful run has
// exercised removal of every key that was inserted
func Run(log *logger.L, conf Configuration, out io.Writer) (*Report, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	policy, _ := avl.ParsePolicy(conf.Policy)

	r := &runner{
		log:       log,
		conf:      conf,
		tree:      avl.NewPolicy(policy),
		reference: make(map[int]int64),
		keys:      make(map[int]avl.Item),
	}

	log.Infof("start: seed: %d  keys: %d  operations: %d  policy: %s  kind: %s",
		conf.Seed, conf.Keys, conf.Operations, policy, conf.KeyKind)

	rng := rand.New(rand.NewSource(conf.Seed))

	for i := 1; i <= conf.Operations; i += 1 {
		k := rng.Intn(conf.Keys)
		if rng.Intn(100) < conf.RemovePercent {
			r.remove(k)
		} else {
			r.insert(k, rng.Int63())
		}

		if 0 == i%conf.AuditEvery {
			if err := r.audit(); nil != err {
				log.Errorf("operation: %d  audit error: %s", i, err)
				return &r.report, err
			}
		}
	}

	if err := r.audit(); nil != err {
		log.Errorf("final audit error: %s", err)
		return &r.report, err
	}

	if conf.Print && nil != out {
		depth := r.tree.Fprint(out, true)
		fmt.Fprintf(out, "depth: %d\n", depth)
	}

	if err := r.drain(); nil != err {
		log.Errorf("drain error: %s", err)
		return &r.report, err
	}

	log.Infof("finished: %s", &r.report)
	return &r.report, nil
}

func (r *runner) key(k int) avl.Item {
	if key, ok := r.keys[k]; ok {
		return key
	}
	key, err := item.Generate(r.conf.KeyKind, k)
	if nil != err {
		fault.PanicWithError("workload: generate key", err)
	}
	r.keys[k] = key
	return key
}

func (r *runner) insert(k int, value int64) {
	if _, ok := r.reference[k]; ok {
		r.report.Overwrites += 1
	} else {
		r.report.Inserts += 1
	}
	r.reference[k] = value
	r.tree.Insert(r.key(k), value)

	if n := r.tree.Count(); n > r.report.PeakCount {
		r.report.PeakCount = n
	}
}

func (r *runner) remove(k int) {
	if _, ok := r.reference[k]; ok {
		r.report.Removes += 1
		delete(r.reference, k)
	} else {
		r.report.Misses += 1
	}
	r.tree.Remove(r.key(k))
}

// structural audit plus comparison with the reference model
func (r *runner) audit() error {
	r.report.Audits += 1

	if h := r.tree.Height(); h > r.report.PeakHeight {
		r.report.PeakHeight = h
	}

	if err := Audit(r.tree); nil != err {
		return err
	}
	if len(r.reference) != r.tree.Count() {
		return fault.ErrCountMismatch
	}
	for k, expected := range r.reference {
		value, err := r.tree.At(r.key(k))
		if nil != err {
			return err
		}
		if expected != value {
			return fault.ErrValueMismatch
		}
	}

	r.log.Debugf("audit: %d  count: %d  height: %d", r.report.Audits, r.tree.Count(), r.tree.Height())
	return nil
}

// remove every remaining key in ascending numeric order
func (r *runner) drain() error {
	remaining := make([]int, 0, len(r.reference))
	for k := range r.reference {
		remaining = append(remaining, k)
	}
	sort.Ints(remaining)

	for i, k := range remaining {
		r.remove(k)
		if 0 == (i+1)%r.conf.AuditEvery {
			if err := r.audit(); nil != err {
				return err
			}
		}
	}

	if !r.tree.IsEmpty() || 0 != r.tree.Count() {
		return fault.ErrTreeNotEmpty
	}
	return nil
}
