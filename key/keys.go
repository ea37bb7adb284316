// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Stack Buffer Policy - these keys drive the growth and shrink behaviour of stacks built by the CLI.
const (
	StackInitialCapacity = "stack.initial_capacity"
	StackGrowthFactor    = "stack.growth_factor"
	StackShrinkThreshold = "stack.shrink_threshold"
)

// Playground - these keys configure the interactive stack playground.
const (
	TUIUndoLimit = "tui.undo_limit"
)

// Benchmarking - these keys configure the amortized cost report.
const (
	BenchSize = "bench.size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
