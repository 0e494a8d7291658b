package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// DocumentsComputedTotal counts price calculation runs by result.
	DocumentsComputedTotal *prometheus.CounterVec
	// IBANEncodedTotal counts IBAN encoding attempts by result.
	IBANEncodedTotal *prometheus.CounterVec
	// QREncodedTotal counts QR payment string encoding attempts by result.
	QREncodedTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		DocumentsComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_computed_total",
			Help:      "Count of price calculation runs by result.",
		}, []string{"result"})
		IBANEncodedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iban_encoded_total",
			Help:      "Count of IBAN encoding attempts by result.",
		}, []string{"result"})
		QREncodedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "qr_encoded_total",
			Help:      "Count of QR payment string encodings by result.",
		}, []string{"result"})

		mustRegisterCollector(reg, DocumentsComputedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DocumentsComputedTotal = v
			}
		})
		mustRegisterCollector(reg, IBANEncodedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				IBANEncodedTotal = v
			}
		})
		mustRegisterCollector(reg, QREncodedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QREncodedTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
