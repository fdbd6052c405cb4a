package main

import (
	"dora-styles/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// dora-styles scaffolds the Dora Styles component stylesheet library into a web project:
//   - `init` asks a few questions, writes dora.config.json at the project root, installs sass
//     for SCSS projects, and creates the shared variables stylesheet
//   - `add styles <name>` copies one component style (from the remote catalog or the bundled
//     library) into the configured styles directory
//   - both commands keep the global stylesheet's @import list free of duplicates, so
//     re-running either of them is safe
//
// All paths are resolved against the current working directory.
func main() {
	cmd.Execute()
}
