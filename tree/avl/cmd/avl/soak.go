package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"go.lepak.sg/avltree/tree/avl"
)

func runSoak(c *cli.Context) error {
	log := logger.New(logTag)

	rounds := c.Int("rounds")
	num := c.Int("num")
	workers := c.Int("workers")
	seed := c.Int64("seed")

	if rounds <= 0 || num <= 0 || workers <= 0 {
		return fmt.Errorf("rounds: %d  num: %d  workers: %d must all be positive", rounds, num, workers)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Infof("soak: rounds: %d  num: %d  workers: %d  seed: %d", rounds, num, workers, seed)

	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(context.Background())

	for r := 0; r < rounds; r++ {
		// fails only once a round has failed and cancelled ctx
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		round, s := r, seed+int64(r)
		g.Go(func() error {
			defer sem.Release(1)

			if err := soakRound(ctx, num, s); err != nil {
				log.Errorf("soak: round: %d  seed: %d  error: %s", round, s, err)
				return fmt.Errorf("round %d (seed %d): %w", round, s, err)
			}
			log.Debugf("soak: round: %d  seed: %d  ok", round, s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "soak: %d rounds of %d keys: ok\n", rounds, num)
	return nil
}

// soakRound mixes inserts and deletes of keys in [0, num) on one tree,
// mirroring them in a slice, and checks the tree after every mutation.
// It then deletes everything in random order.
func soakRound(ctx context.Context, num int, seed int64) error {
	rd := rand.New(rand.NewSource(seed))
	tr := avl.NewOrdered[int]()
	present := make([]int, 0, num)

	for step := 0; step < 2*num; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		k := rd.Intn(num)
		had := slices.Contains(present, k)

		if rd.Intn(3) == 0 {
			if deleted := tr.Delete(k); deleted != had {
				return fmt.Errorf("step %d: delete %d returned %t", step, k, deleted)
			}
			if had {
				i := slices.Index(present, k)
				present = slices.Delete(present, i, i+1)
			}
		} else {
			inserted, err := tr.Insert(k)
			if err != nil {
				return err
			}
			if inserted == had {
				return fmt.Errorf("step %d: insert %d returned %t", step, k, inserted)
			}
			if !had {
				present = append(present, k)
			}
		}

		if err := tr.Check(); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	}

	slices.Sort(present)
	if items := tr.Items(); !slices.Equal(items, present) {
		return fmt.Errorf("items %v, expected %v", items, present)
	}

	rd.Shuffle(len(present), func(i, j int) {
		present[i], present[j] = present[j], present[i]
	})
	for _, k := range present {
		if !tr.Delete(k) {
			return fmt.Errorf("drain: delete %d returned false", k)
		}
		if err := tr.Check(); err != nil {
			return fmt.Errorf("drain: delete %d: %w", k, err)
		}
	}

	if !tr.IsEmpty() {
		return fmt.Errorf("drain: %d items left", tr.Len())
	}
	return nil
}
