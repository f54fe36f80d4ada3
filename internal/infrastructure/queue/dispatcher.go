package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/labcel/storefront/internal/api/metrics"
	"github.com/labcel/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	defaultBuffer  = 256
	taskTimeout    = 30 * time.Second
)

// Dispatcher runs notification tasks off the request path. Tasks are routed to
// a fixed set of workers by hashing the order id, so the messages of a single
// order are delivered in publish order.
type Dispatcher struct {
	workers []chan ports.NotificationTask
	handler ports.NotificationHandler
	log     zerolog.Logger
	wg      sync.WaitGroup

	// mu guards stopped and the closing of the worker channels.
	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each with
// a buffer of size tasks. Non-positive values use the defaults.
func NewDispatcher(numWorkers, buffer int, handler ports.NotificationHandler, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationTask, numWorkers),
		handler: handler,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationTask, buffer)
	}
	return d
}

// Start launches all worker goroutines. Tasks run with a context detached
// from ctx cancellation so in-flight deliveries finish during shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(base, i, ch)
	}
}

// Publish enqueues a task without blocking. When the worker's buffer is full,
// or the dispatcher has been stopped, the task is dropped and logged; order
// writes never wait on notifications.
func (d *Dispatcher) Publish(task ports.NotificationTask) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx := d.shardIndex(task.OrderID)
	if d.stopped {
		metrics.NotificationTasksTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("order_id", task.OrderID).
			Str("type", task.Type).
			Msg("notification dispatcher stopped, task dropped")
		return
	}
	select {
	case d.workers[idx] <- task:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationTasksTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("order_id", task.OrderID).
			Str("type", task.Type).
			Int("worker_id", idx).
			Msg("notification queue full, task dropped")
	}
}

// Stop closes the worker channels and waits for queued tasks to drain.
// Tasks published after Stop are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an order id deterministically to a worker index.
func (d *Dispatcher) shardIndex(orderID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(orderID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationTask) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for task := range ch {
		metrics.NotificationQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		d.handle(ctx, id, task)
	}
}

func (d *Dispatcher) handle(ctx context.Context, id int, task ports.NotificationTask) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.NotificationTasksTotal.WithLabelValues("failed").Inc()
			d.log.Error().Interface("panic", r).Str("order_id", task.OrderID).Int("worker_id", id).Msg("notification task panicked")
		}
	}()

	err := d.handler.Handle(ctx, task)
	metrics.NotificationTaskDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationTasksTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("order_id", task.OrderID).
			Str("type", task.Type).
			Int("worker_id", id).
			Msg("notification task failed")
		return
	}
	metrics.NotificationTasksTotal.WithLabelValues("processed").Inc()
}
