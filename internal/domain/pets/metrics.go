package pets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	petsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "petstore_pets_generated_total",
			Help: "Total number of pet records generated",
		},
	)

	generateRejectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petstore_generate_rejects_total",
			Help: "Total number of generate requests rejected by count validation",
		},
		[]string{"reason"},
	)
)
