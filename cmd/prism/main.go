// Package main provides the Prism ML CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prism-ml/prism/internal/models"
	"github.com/prism-ml/prism/introspect"
)

const version = "v0.1.0-dev"

// defaultKeep is the allow-list used when no config file is given.
var defaultKeep = []string{
	"num_classes", "in_channels", "out_channels", "kernel_size",
	"stride", "padding", "in_features", "out_features",
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Prism ML %s\n", version)
			return
		case "describe":
			if err := describe(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "prism describe: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Prism ML - Structural Introspection for Module Trees")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  describe [config]    Describe the built-in demo model as JSON,")
	fmt.Println("                       with the attribute allow-list from a TOML/YAML")
	fmt.Println("                       config file (built-in allow-list if omitted)")
	fmt.Println("")
	fmt.Println("See examples/describe-model for using the library directly.")
}

// describe parses the built-in demo model (an 18-layer ResNet) and
// writes the description to stdout.
func describe(args []string) error {
	var parser *introspect.Parser
	if len(args) > 0 {
		p, err := introspect.NewParser(args[0])
		if err != nil {
			return err
		}
		parser = p
	} else {
		parser = introspect.NewParserWithKeep(defaultKeep)
	}

	node, err := parser.Parse(models.ResNet18(1000))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
