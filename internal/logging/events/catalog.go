package events

import "github.com/atomicstack/glossary/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Request(source string) {
	logging.Trace("catalog.request", map[string]interface{}{"source": source})
}

func (CatalogTracer) Loaded(source string, terms, categories int) {
	logging.Trace("catalog.loaded", map[string]interface{}{
		"source":     source,
		"terms":      terms,
		"categories": categories,
	})
}

func (CatalogTracer) Failed(source string, err error) {
	payload := map[string]interface{}{"source": source}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.failed", payload)
}
