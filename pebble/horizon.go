package pebble

import (
	"github.com/go-peb/peb/inter"
	"github.com/go-peb/peb/logger"
)

// HorizonDriver repeatedly extends an Encoder's horizon by one step and
// re-solves until the result flips from Unsat to Sat, Unknown, or the
// step cap KMax is reached.
type HorizonDriver struct {
	Encoder *Encoder
	KMax    int
}

// NewHorizonDriver wraps enc with an absolute cap on the number of steps.
func NewHorizonDriver(enc *Encoder, kMax int) *HorizonDriver {
	return &HorizonDriver{Encoder: enc, KMax: kMax}
}

// Run drives the encoder to a verdict. It calls Init once, tries the
// K=0 horizon (the primary outputs may already be primary inputs, needing
// no action at all), then loops AddStep/Solve. An Unknown at K=0 ends the
// run just as it does at any later horizon. No state is carried between
// iterations beyond the encoder's growing, permanent clause database.
func (d *HorizonDriver) Run() (inter.Result, ActionSequence, error) {
	log := logger.Logger()
	d.Encoder.Init()

	res0 := d.Encoder.Solve()
	if res0 == inter.Sat {
		seq, err := d.Encoder.ExtractResult()
		if err != nil {
			return inter.Unknown, nil, err
		}
		log.Debug().Int("k", 0).Msg("horizon step solved")
		return inter.Sat, seq, nil
	}
	if res0 == inter.Unknown {
		return inter.Unknown, nil, nil
	}

	for {
		if d.Encoder.K >= d.KMax {
			log.Debug().Int("kMax", d.KMax).Msg("horizon driver hit the step cap")
			return inter.Unknown, nil, nil
		}
		d.Encoder.AddStep()
		res := d.Encoder.Solve()
		log.Debug().Int("k", d.Encoder.K).Str("result", res.String()).Msg("horizon step solved")
		switch res {
		case inter.Unsat:
			continue
		case inter.Sat:
			seq, err := d.Encoder.ExtractResult()
			if err != nil {
				return inter.Unknown, nil, err
			}
			return inter.Sat, seq, nil
		default:
			return inter.Unknown, nil, nil
		}
	}
}
