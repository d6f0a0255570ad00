package commands

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vad/stats/vad"
)

type record struct {
	Signal   string
	Frame    int
	Time     float64
	Features vad.FrameFeatures
}

// yamlRecord is the serialized form of a record.
type yamlRecord struct {
	Signal            string  `yaml:"signal"`
	Frame             int     `yaml:"frame"`
	Time              float64 `yaml:"time_s"`
	Energy            float32 `yaml:"energy"`
	DominantFrequency float32 `yaml:"dominant_frequency_hz"`
	SpectralFlatness  float32 `yaml:"spectral_flatness_db"`
	FlatnessDefined   bool    `yaml:"flatness_defined"`
}

type writer interface {
	Write(rec record) error
	Flush() error
}

func newWriter(format string, w io.Writer) (writer, error) {
	switch format {
	case "text":
		return &textWriter{w: w}, nil
	case "yaml":
		return &yamlWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, yaml)", format)
	}
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(rec record) error {
	_, err := fmt.Fprintf(t.w, "%-7s %4d %7.3fs %v\n", rec.Signal, rec.Frame, rec.Time, rec.Features)
	return err
}

func (t *textWriter) Flush() error { return nil }

type yamlWriter struct {
	w    io.Writer
	recs []yamlRecord
}

func (y *yamlWriter) Write(rec record) error {
	y.recs = append(y.recs, yamlRecord{
		Signal:            rec.Signal,
		Frame:             rec.Frame,
		Time:              rec.Time,
		Energy:            rec.Features.Energy,
		DominantFrequency: rec.Features.DominantFrequency,
		SpectralFlatness:  rec.Features.SpectralFlatness,
		FlatnessDefined:   rec.Features.HasFlatness(),
	})
	return nil
}

func (y *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.recs); err != nil {
		return err
	}
	return enc.Close()
}
