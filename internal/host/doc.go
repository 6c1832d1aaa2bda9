// Package host provides the capability handle used to terminate the process
// and to push notifications to the front end.
//
// Components that need either capability receive a Controller explicitly;
// nothing reaches for a global application handle.
//
// Example Usage:
//
//	ctrl := host.New(logger, host.WithEmitter(hub))
//	ctrl.OnExit(func() { _ = logger.Sync() })
//	_ = ctrl.Emit("blinkmd://shortcut-edit-mode", nil)
//	ctrl.Exit(0)
package host
