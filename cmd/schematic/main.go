package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/cmd/schematic/commands"
	"github.com/yankeeinlondon/schematic/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schematic v%s\n", schematic.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	commandNames := []string{"validate", "generate", "list", "mcp", "version", "help"}

	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`schematic - typed REST API client generator

Usage:
  schematic <command> [options]

Commands:
  validate    Validate API definitions and report every diagnostic
  generate    Generate typed HTTP client source from API definitions
  list        List the bundled API definitions
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  schematic list
  schematic validate --api OpenAI
  schematic validate --file defs.yaml --format json
  schematic generate --api ElevenLabs --output ./gen
  schematic generate --all --output ./gen
  schematic generate --api OpenAI --dry-run

Run 'schematic <command> --help' for more information on a command.`)
}
