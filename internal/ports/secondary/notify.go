package secondary

// ToastSink renders the transient sync confirmation. The emitter in
// internal/app owns the display window; the sink only draws and clears.
type ToastSink interface {
	// Render makes the notification visible.
	Render(message string)

	// Clear removes the notification after its display window elapses.
	Clear()
}
