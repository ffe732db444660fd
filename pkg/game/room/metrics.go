package room

import (
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"isgt/pkg/engine/world"
)

const (
	stateLabel   = "state"
	typeLabel    = "type"
	resultLabel  = "result"
	kindLabel    = "kind"
	errTypeLabel = "error_type"
)

var (
	roomsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isgt_rooms_generated",
		Help: "The number of rooms that reached a state.",
	}, []string{
		stateLabel,
	})

	roomErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isgt_room_errors",
		Help: "The errors that aborted a room.",
	}, []string{
		errTypeLabel,
	})

	openingsPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isgt_openings_placed",
		Help: "The number of doors and windows placed.",
	}, []string{
		typeLabel,
	})

	propsPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isgt_props",
		Help: "The number of prop draws by result.",
	}, []string{
		resultLabel,
	})

	shortfalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isgt_placement_shortfalls",
		Help: "The number of placement targets that were not met.",
	}, []string{
		kindLabel,
	})

	roomLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "isgt_room_generation_latency",
		Help: "The time to generate a room.",
	}, []string{
		resultLabel,
	})
)

func instrumentState(s State) {
	roomsGenerated.With(prometheus.Labels{
		stateLabel: s.String(),
	}).Inc()
}

func instrumentRoomError(err error) {
	roomErrors.With(prometheus.Labels{
		errTypeLabel: errors.Type(err),
	}).Inc()
}

func instrumentOpening(t world.WallState) {
	openingsPlaced.With(prometheus.Labels{
		typeLabel: t.String(),
	}).Inc()
}

func instrumentProps(placed, discarded int) {
	propsPlaced.With(prometheus.Labels{resultLabel: "placed"}).Add(float64(placed))
	propsPlaced.With(prometheus.Labels{resultLabel: "discarded"}).Add(float64(discarded))
}

func instrumentShortfall(kind string) {
	shortfalls.With(prometheus.Labels{
		kindLabel: kind,
	}).Inc()
}

func instrumentRoomLatency(start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	roomLatency.With(prometheus.Labels{
		resultLabel: result,
	}).Observe(time.Since(start).Seconds())
}
