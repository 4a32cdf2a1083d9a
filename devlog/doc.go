// Package devlog prints colorized, headered developer messages to the
// console.
//
// Every call is formatted as
//
//	<color>[<header>] <message>\x1b[0m
//
// and then gated by two environment variables, NODE_ENV and DEV_MODE by
// default:
//
//   - NODE_ENV=production suppresses everything.
//   - Default calls print to stdout.
//   - Debug calls print "DEBUG - <formatted>" only when DEV_MODE=debug.
//     Otherwise a warning goes to stderr and the message is dropped.
//
// Basic use:
//
//	devlog.Blue("server started")
//	devlog.Green("cache warmed", devlog.Header("cache"))
//	devlog.Red("retrying", devlog.Header("db"), devlog.Debug())
//
// A Logger can be pinned to a fixed environment and writers, which is how
// tests drive it:
//
//	l := devlog.New(
//		devlog.WithEnvironment(devlog.Environment{Verbosity: "debug"}),
//		devlog.WithOutput(&buf),
//	)
package devlog
