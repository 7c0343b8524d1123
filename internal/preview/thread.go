package preview

import "runtime"

// GLFW requires all windowing and GL calls to happen on the same OS
// thread that created the context, so the goroutine that imports this
// package must never be rescheduled onto another thread.
func runtimeLockOSThread() {
	runtime.LockOSThread()
}
