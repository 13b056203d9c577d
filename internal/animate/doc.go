// Package animate sweeps the accumulated area under a curve one step at a
// time.
//
// A [Session] is a small state machine:
//
//	Running  --Pause-->   Paused
//	Paused   --Resume-->  Running
//	Running  --Step (x reaches b)--> Finished
//	any      --Restart--> Running (x = a, area = 0)
//
// Sessions own no goroutines or timers. The caller drives them by calling
// [Session.Step] once per tick and decides the tick rate. A session is not
// safe for concurrent use.
package animate
