package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"go.lepak.sg/avltree/tree/avl"
)

func runBuild(c *cli.Context) error {
	log := logger.New(logTag)

	items, err := parseInts(c.Args())
	if err != nil {
		return err
	}
	deletes := c.IntSlice("delete")

	log.Infof("build: items: %v  delete: %v", items, deletes)

	w := c.App.Writer
	tr := avl.NewOrdered[int]()

	for _, k := range items {
		inserted, err := tr.Insert(k)
		if err != nil {
			return err
		}
		if !inserted {
			log.Warnf("build: insert: %d already present", k)
		}
		fmt.Fprintf(w, "insert %d:%s\n", k, tr)
	}

	for _, k := range deletes {
		if !tr.Delete(k) {
			log.Warnf("build: delete: %d not present", k)
		}
		fmt.Fprintf(w, "delete %d:%s\n", k, tr)
	}

	fmt.Fprintln(w, "tree:")
	fmt.Fprintln(w, tr.Diagram())

	return tr.Check()
}

func parseInts(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("no items given")
	}

	items := make([]int, 0, len(args))
	for _, s := range args {
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", s, err)
		}
		items = append(items, k)
	}
	return items, nil
}
