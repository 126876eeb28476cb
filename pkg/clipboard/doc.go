// Package clipboard copies text to the clipboard of the machine running the
// service and tracks a short-lived "copied" state for UI feedback.
//
// A Copier refuses blank text, writes through a pluggable Writer and keeps the
// copied flag raised for a fixed window (two seconds by default) after each
// successful write. The flag is deadline based, so no timers or goroutines are
// involved and tests can drive it with a fake clock.
//
// Writers:
//   - System: the operating system clipboard (github.com/atotto/clipboard)
//   - OSC52: a terminal escape sequence, useful over SSH (github.com/aymanbagabas/go-osc52/v2)
//   - Chain: tries writers in order until one succeeds
//   - Memory: in-process buffer, for tests and headless environments
//
// Usage:
//
//	copier := clipboard.New(clipboard.Chain(clipboard.System(), clipboard.OSC52(os.Stderr)))
//
//	if err := copier.Copy(ctx, "hello"); err != nil {
//		switch {
//		case errors.Is(err, clipboard.ErrBlankText):
//			// warn: nothing to copy
//		default:
//			// warn: clipboard write failed
//		}
//	}
//
//	copier.Copied() // true for the next two seconds
package clipboard
