package collector

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"CommodityPulse/internal/model"
)

// valueWrapper is the per-series value shape in the source document:
// {"v": "<numeric-string>"}.
type valueWrapper struct {
	V string `json:"v"`
}

// decodeDocument reads the source document: a top-level "observations"
// array whose entries carry a "d" date stamp plus wrapped values keyed
// by series code. Data-quality problems degrade at the finest
// granularity: a malformed value wrapper drops that one field, an
// entry without a usable date stamp is skipped, and unknown top-level
// fields or series codes are simply ignored. Only a structurally
// unreadable document is an error.
func decodeDocument(r io.Reader, log *zap.Logger) ([]model.RawObservation, error) {
	var doc struct {
		Observations []map[string]json.RawMessage `json:"observations"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	observations := make([]model.RawObservation, 0, len(doc.Observations))
	for i, entry := range doc.Observations {
		var date string
		if raw, ok := entry["d"]; !ok || json.Unmarshal(raw, &date) != nil {
			log.Warn("skipping observation without date stamp", zap.Int("index", i))
			continue
		}
		values := make(map[string]string, len(entry)-1)
		for code, raw := range entry {
			if code == "d" {
				continue
			}
			var w valueWrapper
			if err := json.Unmarshal(raw, &w); err != nil {
				log.Warn("dropping malformed value",
					zap.String("date", date),
					zap.String("code", code))
				continue
			}
			values[code] = w.V
		}
		observations = append(observations, model.RawObservation{Date: date, Values: values})
	}
	return observations, nil
}
