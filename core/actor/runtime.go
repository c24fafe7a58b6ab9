package actor

import (
	"container/heap"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/codewandler/actio-go/core/ds"
	"github.com/codewandler/actio-go/core/eff"
)

// Options configures a [Runtime]. Zero values select defaults.
type Options struct {
	Stdout io.Writer    // defaults to os.Stdout
	Stderr io.Writer    // defaults to os.Stderr
	Logger *slog.Logger // defaults to slog.Default()
	// Metrics receives runtime instrumentation. Defaults to a no-op.
	Metrics RuntimeMetrics
	// Exit terminates the host process. Defaults to os.Exit. Tests inject
	// a recording function here.
	Exit func(status int)
}

// Runtime is a single-threaded cooperative scheduler. It maintains a FIFO
// ready queue of continuations and a deadline-ordered timer queue, and
// implements [eff.Executor].
//
// All continuations execute on the goroutine that calls [Runtime.Run];
// Runtime is not safe for concurrent use from other goroutines.
type Runtime struct {
	ready  ds.Queue[func()]
	timers timerQueue
	seq    uint64

	stdout  io.Writer
	stderr  io.Writer
	log     *slog.Logger
	metrics RuntimeMetrics
	exit    func(status int)
}

// NewRuntime creates a runtime with the given options.
func NewRuntime(opt Options) *Runtime {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Metrics == nil {
		opt.Metrics = NopRuntimeMetrics()
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}

	return &Runtime{
		stdout:  opt.Stdout,
		stderr:  opt.Stderr,
		log:     opt.Logger,
		metrics: opt.Metrics,
		exit:    opt.Exit,
	}
}

// Enqueue appends run to the ready queue for a later scheduler turn.
func (rt *Runtime) Enqueue(run func()) {
	rt.ready.Push(run)
	rt.metrics.ReadyDepth(rt.ready.Len())
}

// After schedules run once at least d has elapsed. Timers with equal
// deadlines fire in scheduling order.
func (rt *Runtime) After(d time.Duration, run func()) {
	rt.seq++
	heap.Push(&rt.timers, &timer{
		at:  time.Now().Add(d),
		seq: rt.seq,
		run: run,
	})
	rt.metrics.TimersPending(rt.timers.Len())
}

// Exit terminates the host process.
func (rt *Runtime) Exit(status int) {
	rt.log.Debug("runtime exit", slog.Int("status", status))
	rt.exit(status)
}

func (rt *Runtime) Stdout() io.Writer { return rt.stdout }
func (rt *Runtime) Stderr() io.Writer { return rt.stderr }
func (rt *Runtime) Log() *slog.Logger { return rt.log }

var _ eff.Executor = (*Runtime)(nil)

// Run drains the runtime: it pops and executes ready continuations until
// the ready queue is empty, sleeps until the next timer deadline when
// timers are pending, and returns once both queues are empty.
func (rt *Runtime) Run() {
	for {
		if run, ok := rt.ready.Pop(); ok {
			rt.metrics.ReadyDepth(rt.ready.Len())
			tmr := rt.metrics.TurnDuration()
			run()
			tmr.ObserveDuration()
			rt.metrics.TurnCompleted()
			continue
		}

		next, ok := rt.timers.peek()
		if !ok {
			return
		}
		if d := time.Until(next.at); d > 0 {
			time.Sleep(d)
		}
		rt.promoteDueTimers()
	}
}

// promoteDueTimers moves every expired timer onto the ready queue in
// deadline order.
func (rt *Runtime) promoteDueTimers() {
	now := time.Now()
	for {
		next, ok := rt.timers.peek()
		if !ok || next.at.After(now) {
			break
		}
		t := heap.Pop(&rt.timers).(*timer)
		rt.ready.Push(t.run)
	}
	rt.metrics.TimersPending(rt.timers.Len())
	rt.metrics.ReadyDepth(rt.ready.Len())
}

// Exec enqueues m on the runtime, runs the scheduler to quiescence, and
// returns m's result. The second return is false when the runtime went
// idle while m was still suspended (for example a receive that can never
// be woken).
func Exec[E, A any](rt *Runtime, m eff.IO[E, A]) (eff.Result[E, A], bool) {
	var (
		out  eff.Result[E, A]
		done bool
	)
	rt.Enqueue(func() {
		m(rt, func(r eff.Result[E, A]) {
			out = r
			done = true
		})
	})
	rt.Run()
	return out, done
}

// ---- timers ----

type timer struct {
	at  time.Time
	seq uint64
	run func()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

func (q timerQueue) peek() (*timer, bool) {
	if len(q) == 0 {
		return nil, false
	}
	return q[0], true
}
