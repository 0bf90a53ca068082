// Package main runs the optimizer against a couple of sample requests and
// prints the formatted shopping lists. Useful for eyeballing scoring changes
// without starting the HTTP server.
package main

import (
	"fmt"
	"log"

	"github.com/grocerly/v1/internal/domain/catalog"
	"github.com/grocerly/v1/internal/domain/shopping"
)

func main() {
	c, err := catalog.New()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	optimizer := shopping.NewOptimizer(c, shopping.DefaultScoringWeights())

	runs := []struct {
		foodItem string
		request  func(lines []catalog.RecipeLine) shopping.Request
	}{
		{
			foodItem: "guacamole",
			request: func(lines []catalog.RecipeLine) shopping.Request {
				return shopping.Request{Lines: lines, Budget: 12, MaxStores: 2, Tier: catalog.TierBudget}
			},
		},
		{
			foodItem: "salmon dinner",
			request: func(lines []catalog.RecipeLine) shopping.Request {
				return shopping.Request{Lines: lines, MaxStores: 3, Tier: catalog.TierPremium}
			},
		},
	}

	for _, run := range runs {
		rec, err := c.Resolve(run.foodItem)
		if err != nil {
			log.Fatalf("resolve %s: %v", run.foodItem, err)
		}

		alloc, err := optimizer.Optimize(run.request(rec.Lines))
		if err != nil {
			log.Fatalf("optimize %s: %v", run.foodItem, err)
		}

		fmt.Println(shopping.FormatList(run.foodItem, alloc))
	}
}
