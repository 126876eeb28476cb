// Package studio is the qrstudio host application: the single-user session
// state, the actions the page can trigger, and the HTTP handlers and
// templates that expose them.
//
// Studio owns the render configuration, the theme, the last fetched counter
// value and the clipboard copier. Every action is an explicit method guarded
// by one mutex; templates only ever see a View snapshot.
//
//	s := studio.New(
//		studio.WithEncoder(qrcode.NewCachedEncoder(qrcode.NewSkip2Encoder(), 128)),
//		studio.WithCopier(clipboard.New(clipboard.System())),
//		studio.WithCounterSource(counter.NewClient(apiURL)),
//	)
//	s.RefreshCounterAsync(ctx)
//
//	h := studio.NewHandlers(s, studio.WithHitRecorder(store))
//	h.Register(r)
package studio
