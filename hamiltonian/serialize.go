package hamiltonian

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tbsolve/tbsolve/basis"
)

// amplitudeJSON is the persisted form of a scalar-valued amplitude. The
// Callback flag is written for forward compatibility with readers that index
// mixed dumps; an Evaluator-backed amplitude itself never serializes.
type amplitudeJSON struct {
	Re       float64     `json:"re"`
	Im       float64     `json:"im"`
	To       basis.Index `json:"to"`
	From     basis.Index `json:"from"`
	Callback bool        `json:"callback"`
}

// MarshalJSON encodes a scalar-valued amplitude. An Evaluator-backed
// amplitude fails with ErrCallbackNotSerializable: the callback behavior
// cannot be represented and must not be dropped silently.
func (a Amplitude) MarshalJSON() ([]byte, error) {
	if a.HasEvaluator() {
		return nil, errors.Wrapf(ErrCallbackNotSerializable, "marshal %s", a)
	}

	return json.Marshal(amplitudeJSON{
		Re:   real(a.value),
		Im:   imag(a.value),
		To:   a.to,
		From: a.from,
	})
}

// UnmarshalJSON decodes a persisted amplitude. A record with the callback
// flag set fails with ErrCallbackNotSerializable — the value source is gone
// and reconstructing a scalar stand-in would change semantics.
func (a *Amplitude) UnmarshalJSON(data []byte) error {
	var rec amplitudeJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "unmarshal amplitude")
	}
	if rec.Callback {
		return errors.Wrap(ErrCallbackNotSerializable, "unmarshal amplitude")
	}

	*a = New(complex(rec.Re, rec.Im), rec.To, rec.From)

	return nil
}
