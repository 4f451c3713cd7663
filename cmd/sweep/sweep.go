package main

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"arctic-room/internal/room"
)

type replica struct {
	pattern room.Pattern
	seed    int64
}

type replicaResult struct {
	replica
	fitness room.Fitness
	err     error
}

// summary aggregates the replicas of one pattern.
type summary struct {
	pattern     room.Pattern
	runs        int
	failures    int
	monotone    int
	meanFilling float64
	stdFilling  float64
	meanPoles   [6]float64
}

func (s summary) String() string {
	return fmt.Sprintf("%-14s runs=%d failed=%d monotone=%d filling=%.4f±%.4f poles x=(%.1f, %.1f) y=(%.1f, %.1f) z=(%.1f, %.1f)",
		s.pattern, s.runs, s.failures, s.monotone, s.meanFilling, s.stdFilling,
		s.meanPoles[0], s.meanPoles[1], s.meanPoles[2], s.meanPoles[3], s.meanPoles[4], s.meanPoles[5])
}

func buildReplicas(patterns []room.Pattern, seeds int, firstSeed int64) []replica {
	out := make([]replica, 0, len(patterns)*seeds)
	for _, p := range patterns {
		for i := 0; i < seeds; i++ {
			out = append(out, replica{pattern: p, seed: firstSeed + int64(i)})
		}
	}
	return out
}

// sweep runs every replica as an independent chain on a pool of workers.
func sweep(ctx context.Context, base room.Config, jobsList []replica, workers int) []replicaResult {
	workers = max(workers, 1)
	jobs := make(chan replica)
	results := make(chan replicaResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- runReplica(ctx, base, job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, job := range jobsList {
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []replicaResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].pattern != all[j].pattern {
			return all[i].pattern < all[j].pattern
		}
		return all[i].seed < all[j].seed
	})
	return all
}

func runReplica(ctx context.Context, base room.Config, job replica) replicaResult {
	cfg := base
	cfg.Pattern = job.pattern
	cfg.Seed = job.seed
	cfg.UseSeed = true
	res := replicaResult{replica: job}
	s, err := room.NewSession(cfg)
	if err != nil {
		res.err = err
		return res
	}
	if err := s.Run(ctx, 0, nil); err != nil {
		res.err = err
		return res
	}
	res.fitness = room.Measure(s.Snapshot().Field)
	return res
}

// summarize groups results by pattern, in pattern order.
func summarize(results []replicaResult) []summary {
	byPattern := map[room.Pattern][]replicaResult{}
	var order []room.Pattern
	for _, r := range results {
		if _, ok := byPattern[r.pattern]; !ok {
			order = append(order, r.pattern)
		}
		byPattern[r.pattern] = append(byPattern[r.pattern], r)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	out := make([]summary, 0, len(order))
	for _, p := range order {
		s := summary{pattern: p}
		var fillings []float64
		for _, r := range byPattern[p] {
			s.runs++
			if r.err != nil {
				s.failures++
				continue
			}
			f := r.fitness
			if f.Monotone {
				s.monotone++
			}
			fillings = append(fillings, f.Filling)
			for i, v := range [6]int{f.XFull, f.XEmpty, f.YFull, f.YEmpty, f.ZFull, f.ZEmpty} {
				s.meanPoles[i] += float64(v)
			}
		}
		if n := float64(len(fillings)); n > 0 {
			for i := range s.meanPoles {
				s.meanPoles[i] /= n
			}
			s.meanFilling, s.stdFilling = meanStd(fillings)
		}
		out = append(out, s)
	}
	return out
}

func meanStd(xs []float64) (float64, float64) {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(sq / float64(len(xs)))
}
