package main

import (
	"fmt"
	"os"

	"a11y-advocate-be/pkg/knowledge"

	"github.com/fatih/color"
)

// kblint checks the referential integrity of the built-in knowledge base
// and prints the lookup order, so curation mistakes (a keyword pointing at
// a renamed topic, a shadowed keyword) are caught before deploy.
func main() {
	kb := knowledge.Default()

	fmt.Println("Knowledge base lint")
	fmt.Println()

	fmt.Println("Topics (lookup order):")
	for i, t := range kb.Topics() {
		fmt.Printf("  %2d. %-22s %s\n", i+1, t.ID, t.Question)
	}

	fmt.Println()
	if err := kb.Validate(); err != nil {
		color.Red("FAIL: %v", err)
		os.Exit(1)
	}
	color.Green("OK: all keywords resolve to existing topics")
}
