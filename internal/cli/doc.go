// Package cli renders a demonstration run on the command line.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* and Print* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [PrintExecutionConfig].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatTermLine], [FormatFloatTerm].
//
//   - Create* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [CreateTranscript].
package cli
