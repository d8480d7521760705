// Label-resolution walkthrough without a database or server.
// Run it to eyeball how a catalog renders applied filters.
package main

import (
	"encoding/json"
	"fmt"

	"filterbar/internal/domain/filters"
	"filterbar/internal/i18n"
)

func main() {
	catalog := filters.Catalog{
		{
			Key:   "status",
			Label: "Status",
			Kind:  filters.KindSelect,
			Options: []filters.Option{
				filters.LabeledOption("open", "Open"),
				filters.LabeledOption("closed", "Closed"),
			},
		},
		{
			Key:          "created",
			Label:        "Created",
			OperatorText: "is",
			Kind:         filters.KindDateSelector,
			MinKey:       "created_min",
			MaxKey:       "created_max",
		},
	}

	bundle := i18n.DefaultBundle()
	loc := bundle.Default()
	resolver := filters.NewResolver(loc, loc.DateLayout())

	set := filters.Set{}
	set = set.Add(filters.Applied{Key: "status", Value: "open"})
	set = set.Add(filters.Applied{Key: "created", Value: "today"})
	set = set.Add(filters.Applied{Key: "created_max", Value: "2024-06-30"})
	set = set.Add(filters.Applied{Key: "status", Value: "open"}) // dropped, duplicate id

	fmt.Println("applied set:")
	data, _ := json.MarshalIndent(set, "", "  ")
	fmt.Println(string(data))

	fmt.Println("\nresolved labels:")
	for _, f := range set {
		fmt.Printf("  %-28s -> %q\n", f.ID(), resolver.Label(f, catalog))
	}

	fmt.Println("\nafter removing", set[0].ID(), ":")
	for _, f := range set.Remove(set[0].ID()) {
		fmt.Printf("  %-28s -> %q\n", f.ID(), resolver.Label(f, catalog))
	}
}
