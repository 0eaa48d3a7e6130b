package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realestate_store_writes_total",
		Help: "Keys written to the key-value store.",
	}, []string{"key"})

	StoreCorruptReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realestate_store_corrupt_reads_total",
		Help: "Collections that failed to decode and were treated as empty.",
	}, []string{"key"})

	StoreNotifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "realestate_store_notifications_total",
		Help: "Change notifications emitted, one per committed write batch.",
	})

	ChatSessionsOpened = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realestate_chat_sessions_opened_total",
		Help: "Open-or-create calls by product and outcome (reused, revived, created).",
	}, []string{"product", "outcome"})

	ChatRepliesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "realestate_chat_replies_dropped_total",
		Help: "Simulated replies discarded because the view closed first.",
	})

	ContentRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "realestate_content_rendered_total",
		Help: "Template renders by content type.",
	}, []string{"content_type"})
)
