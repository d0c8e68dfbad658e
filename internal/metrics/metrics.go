package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ABIParsesTotal counts ABI boundary parses by outcome
	ABIParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_abi_parses_total",
			Help: "Total number of verified-contract ABI parses",
		},
		[]string{"status"},
	)

	// AddressViewsTotal counts derived address views by kind
	AddressViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_address_views_total",
			Help: "Total number of address view derivations",
		},
		[]string{"view"},
	)

	// QREncodesTotal counts QR payload encodings by outcome
	QREncodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explorer_qr_encodes_total",
			Help: "Total number of address QR code encodings",
		},
		[]string{"status"},
	)
)
