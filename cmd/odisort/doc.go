// Command odisort sorts a sequence of ints through an explicitly wired
// sorting strategy and prints the result.
//
// With no arguments and no environment it sorts the fixed sample
// [31, 22, 13, 43, 15, 6, 37] with bubble sort and prints:
//
//	6, 13, 15, 22, 31, 37, 43
//
// followed by a blank line.
//
// Usage:
//
//	odisort [--strategy bubble|insertion] [--input "3, 1, 2"] [--config file.yaml] [--log-level warn] [-v]
//
// Environment (overridden by flags):
//
//	ODI_CONFIG          path to a YAML config file (strategy, input, log_level)
//	ODI_SORT_STRATEGY   bubble | insertion
//	ODI_SORT_INPUT      comma and/or space separated ints; set but empty sorts nothing
//	ODI_LOG_LEVEL       logrus level, default warn
//
// Exit codes: 0 success, 1 configuration/input/output failure, 2 usage error.
package main
