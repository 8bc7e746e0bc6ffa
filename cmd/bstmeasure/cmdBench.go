package main

import (
	"context"
	"flag"
	"math"
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/google/subcommands"
	"github.com/petar/GoLLRB/llrb"
	"github.com/sirupsen/logrus"
)

type cmdBench struct {
	n, steps int
	seed     int64
}

func (cmd *cmdBench) Name() string     { return "bench" }
func (cmd *cmdBench) Synopsis() string { return "time insert, find and erase against other containers" }
func (cmd *cmdBench) Usage() string {
	return "bench [-n keys] [-steps runs] [-seed s]\n"
}

func (cmd *cmdBench) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.n, "n", 100000, "number of random keys")
	f.IntVar(&cmd.steps, "steps", 10, "runs per container")
	f.Int64Var(&cmd.seed, "seed", 0, "random seed")
}

// container is the part of a set every workload drives.
type container interface {
	put(int)
	has(int) bool
	del(int)
}

type bstC struct{ t *Trees.Tree[int, uint32] }

func (c bstC) put(v int)      { c.t.Insert(v) }
func (c bstC) has(v int) bool { return c.t.Contains(v) }
func (c bstC) del(v int)      { c.t.EraseValue(v) }

type btreeC struct{ t *btree.BTreeG[int] }

func (c btreeC) put(v int)      { c.t.ReplaceOrInsert(v) }
func (c btreeC) has(v int) bool { return c.t.Has(v) }
func (c btreeC) del(v int)      { c.t.Delete(v) }

type llrbC struct{ t *llrb.LLRB }

func (c llrbC) put(v int)      { c.t.ReplaceOrInsert(llrb.Int(v)) }
func (c llrbC) has(v int) bool { return c.t.Has(llrb.Int(v)) }
func (c llrbC) del(v int)      { c.t.Delete(llrb.Int(v)) }

type redBlackC struct{ t *redblacktree.Tree }

func (c redBlackC) put(v int) { c.t.Put(v, nil) }
func (c redBlackC) has(v int) bool {
	_, found := c.t.Get(v)
	return found
}
func (c redBlackC) del(v int) { c.t.Remove(v) }

type haxMapC struct{ m *haxmap.Map[int, struct{}] }

func (c haxMapC) put(v int) { c.m.Set(v, struct{}{}) }
func (c haxMapC) has(v int) bool {
	_, ok := c.m.Get(v)
	return ok
}
func (c haxMapC) del(v int) { c.m.Del(v) }

type hashMapC struct{ m *hashmap.Map[int, struct{}] }

func (c hashMapC) put(v int) { c.m.Set(v, struct{}{}) }
func (c hashMapC) has(v int) bool {
	_, ok := c.m.Get(v)
	return ok
}
func (c hashMapC) del(v int) { c.m.Del(v) }

type workload struct {
	name   string
	create func(n int) container
}

var workloads = []workload{
	{"bst", func(n int) container { return bstC{Trees.New[int](uint32(n))} }},
	{"btree", func(int) container { return btreeC{btree.NewG[int](32, func(a, b int) bool { return a < b })} }},
	{"llrb", func(int) container { return llrbC{llrb.New()} }},
	{"redblack", func(int) container { return redBlackC{redblacktree.NewWithIntComparator()} }},
	{"haxmap", func(int) container { return haxMapC{haxmap.New[int, struct{}]()} }},
	{"hashmap", func(int) container { return hashMapC{hashmap.New[int, struct{}]()} }},
}

var sideEff bool

// exercise inserts every key, looks up the first half and erases every key,
// each phase in the order of all.
func exercise(c container, all []int) {
	for _, v := range all {
		c.put(v)
	}
	for _, v := range all[:len(all)/2] {
		sideEff = c.has(v)
	}
	for _, v := range all {
		c.del(v)
	}
}

// measure returns the mean and the standard deviation of ms/op over the runs.
func measure(ctx context.Context, w workload, all []int, steps int, rg *rand.Rand) (avg, stddev float64, err error) {
	cs := make([]float64, 0, steps)
	for i := range steps {
		if err = ctx.Err(); err != nil {
			return
		}
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				exercise(w.create(len(all)), all)
			}
		})
		ms := float64(br.NsPerOp()) / 1e6
		cs = append(cs, ms)
		logrus.WithFields(logrus.Fields{"container": w.name, "step": i, "N": br.N, "ms/op": ms}).Debug("run done")
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg = sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	stddev = math.Sqrt(sum / float64(len(cs)))
	return
}

func (cmd *cmdBench) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.n < 2 || cmd.steps < 1 {
		logrus.WithFields(logrus.Fields{"n": cmd.n, "steps": cmd.steps}).Error("need at least 2 keys and 1 step")
		return subcommands.ExitUsageError
	}
	rg := rand.New(rand.NewSource(cmd.seed))
	all := make([]int, cmd.n)
	for i := range all {
		all[i] = rg.Int()
	}
	for _, w := range workloads {
		avg, stddev, err := measure(ctx, w, all, cmd.steps, rg)
		if err != nil {
			logrus.WithError(err).Error("bench interrupted")
			return subcommands.ExitFailure
		}
		logrus.WithFields(logrus.Fields{
			"container": w.name,
			"keys":      cmd.n,
			"average":   avg,
			"stddev":    stddev,
		}).Info("ms/op")
	}
	return subcommands.ExitSuccess
}
