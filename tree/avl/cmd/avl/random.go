package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/exp/slices"

	"go.lepak.sg/avltree/tree/avl"
)

func runRandom(c *cli.Context) error {
	log := logger.New(logTag)

	num := c.Int("num")
	seed := c.Int64("seed")
	count := c.Int("delete")

	if num < 0 {
		return fmt.Errorf("num: %d is negative", num)
	}
	if count < 0 || count > num {
		return fmt.Errorf("delete: %d is outside [0, %d]", count, num)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Infof("random: num: %d  seed: %d  delete: %d", num, seed, count)

	tr := avl.BuildRandom(num, seed)
	deleted := deleteRandom(tr, count, seed)

	w := c.App.Writer

	preorder := make([]int, 0, tr.Len())
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, tr.Len())
	for k := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, k)
	}

	fmt.Fprintln(w, "seed:", seed)
	fmt.Fprintln(w, "deleted:", deleted)
	fmt.Fprintln(w, "preorder:", preorder)
	fmt.Fprintln(w, "inorder:", inorder)
	fmt.Fprintln(w, "tree:")
	fmt.Fprintln(w, tr.Diagram())
	fmt.Fprintln(w, "height:", tr.Height(tr.Top()), "items:", tr.Len())

	if err := tr.Check(); err != nil {
		log.Errorf("random: seed: %d  check: %s", seed, err)
		return err
	}
	fmt.Fprintln(w, "check: ok")

	return nil
}

// deleteRandom deletes count items picked by seed and returns them sorted.
func deleteRandom(tr *avl.Tree[int], count int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed + 1))

	items := tr.Items()
	rd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if count > len(items) {
		count = len(items)
	}

	deleted := items[:count]
	for _, k := range deleted {
		tr.Delete(k)
	}
	slices.Sort(deleted)

	return deleted
}
