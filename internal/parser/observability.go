package parser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reason labels for parseRejections.
const (
	reasonNotMove = "not_move"
	reasonNoName  = "no_name"
	reasonTooOld  = "too_old"
)

var (
	articlesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "potm_articles_parsed_total",
		Help: "Articles run through the extraction engine.",
	})

	candidatesProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "potm_candidates_total",
		Help: "Articles that produced an executive-move candidate.",
	})

	parseRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "potm_parse_rejections_total",
		Help: "Articles rejected by the extraction engine, by stage.",
	}, []string{"reason"})
)
