package core

import (
	"errors"
	"testing"
)

func TestApplyProcessorOptionsDefaults(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 16000 || cfg.BlockSize != 512 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestApplyProcessorOptionsIgnoresInvalid(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(-1), WithBlockSize(0), nil)
	if cfg != DefaultProcessorConfig() {
		t.Fatalf("invalid options changed config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProcessorConfig
		wantErr bool
	}{
		{name: "default", cfg: DefaultProcessorConfig()},
		{name: "zero rate", cfg: ProcessorConfig{SampleRate: 0, BlockSize: 512}, wantErr: true},
		{name: "zero block", cfg: ProcessorConfig{SampleRate: 16000}, wantErr: true},
		{name: "negative block", cfg: ProcessorConfig{SampleRate: 16000, BlockSize: -4}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestBinWidth(t *testing.T) {
	cfg := ApplyProcessorOptions(WithBlockSize(1024))
	if got := cfg.BinWidth(); got != 15.625 {
		t.Fatalf("BinWidth() = %v, want 15.625", got)
	}
}
