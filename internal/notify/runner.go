package notify

import (
	"github.com/robfig/cron/v3"

	"github.com/retiretime/retiretime/internal/logger"
)

// Delivery hands a fired notification to whatever presents it to the user.
type Delivery interface {
	Deliver(n Notification) error
}

// LogDelivery writes fired notifications to the log. The default delivery
// when no platform integration is wired in.
type LogDelivery struct {
	Log logger.Logger
}

func (d LogDelivery) Deliver(n Notification) error {
	d.Log.Info("reminder",
		logger.String("event_id", n.EventID),
		logger.String("title", n.Title),
		logger.String("body", n.Body))
	return nil
}

// Runner drains due notifications from a LocalScheduler on a cron cadence.
type Runner struct {
	cron     *cron.Cron
	sched    *LocalScheduler
	delivery Delivery
	log      logger.Logger
}

// NewRunner wires a runner checking for due reminders on the given cron
// schedule (e.g. "@every 1m").
func NewRunner(sched *LocalScheduler, delivery Delivery, schedule string, log logger.Logger) (*Runner, error) {
	r := &Runner{
		cron:     cron.New(),
		sched:    sched,
		delivery: delivery,
		log:      log,
	}
	if _, err := r.cron.AddFunc(schedule, r.fire); err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins the cron loop. Returns immediately.
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop halts the cron loop, waiting for an in-flight fire to finish.
func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}

// fire delivers every due notification. A failed delivery is logged and the
// notification dropped; it never blocks other deliveries.
func (r *Runner) fire() {
	for _, n := range r.sched.due(r.sched.clock()) {
		if err := r.delivery.Deliver(n); err != nil {
			r.log.Error("failed to deliver reminder",
				logger.String("event_id", n.EventID),
				logger.Err(err))
		}
	}
}
