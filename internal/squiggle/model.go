package squiggle

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/scottcoutts/scrappie/internal/matrix"
)

// Model holds the weight containers of the squiggle network: a bidirectional
// input layer (forward view of the base itself, backward view of the
// following base, shared bias) feeding a tanh hidden state, then an output
// layer producing the three signal features per position.
type Model struct {
	hidden int

	wf, wb, b *matrix.Matrix // [NumBases, hidden] x2, [hidden]
	wo, bo    *matrix.Matrix // [hidden, NumFeatures], [NumFeatures]
}

// modelFile is the on-disk weight format. Matrices are flat column-major.
type modelFile struct {
	Hidden int       `json:"hidden"`
	Wf     []float32 `json:"wf"`
	Wb     []float32 `json:"wb"`
	B      []float32 `json:"b"`
	Wo     []float32 `json:"wo"`
	Bo     []float32 `json:"bo"`
}

//go:embed model_default.json
var defaultModelJSON []byte

var (
	defaultOnce  sync.Once
	defaultModel *Model
)

// Default returns the embedded squiggle model.
func Default() *Model {
	defaultOnce.Do(func() {
		m, err := FromJSON(defaultModelJSON)
		if err != nil {
			panic("squiggle: embedded model is invalid: " + err.Error())
		}
		defaultModel = m
	})
	return defaultModel
}

// FromFile loads a model from a JSON weight file.
func FromFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("squiggle: read model: %w", err)
	}
	m, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("squiggle: model %s: %w", path, err)
	}
	return m, nil
}

// FromJSON decodes and checks a model weight file.
func FromJSON(data []byte) (*Model, error) {
	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	if mf.Hidden <= 0 {
		return nil, fmt.Errorf("hidden size %d must be positive", mf.Hidden)
	}
	for _, w := range []struct {
		name string
		got  int
		want int
	}{
		{"wf", len(mf.Wf), NumBases * mf.Hidden},
		{"wb", len(mf.Wb), NumBases * mf.Hidden},
		{"b", len(mf.B), mf.Hidden},
		{"wo", len(mf.Wo), mf.Hidden * NumFeatures},
		{"bo", len(mf.Bo), NumFeatures},
	} {
		if w.got != w.want {
			return nil, fmt.Errorf("weight %s has %d values, want %d", w.name, w.got, w.want)
		}
	}

	m := &Model{
		hidden: mf.Hidden,
		wf:     matrix.FromSlice(mf.Wf, NumBases, mf.Hidden),
		wb:     matrix.FromSlice(mf.Wb, NumBases, mf.Hidden),
		b:      matrix.FromSlice(mf.B, mf.Hidden, 1),
		wo:     matrix.FromSlice(mf.Wo, mf.Hidden, NumFeatures),
		bo:     matrix.FromSlice(mf.Bo, NumFeatures, 1),
	}
	unspec := matrix.Unspecified()
	for _, w := range []*matrix.Matrix{m.wf, m.wb, m.b, m.wo, m.bo} {
		if w == nil {
			return nil, fmt.Errorf("weight allocation failed")
		}
		if !matrix.Validate(w, unspec, unspec, unspec, true) {
			return nil, fmt.Errorf("weights contain non-finite values")
		}
	}
	return m, nil
}

// Hidden returns the hidden layer width.
func (m *Model) Hidden() int { return m.hidden }
