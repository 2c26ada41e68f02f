package qcircuit

const (
	// MaxQubits bounds the register width; 2^30 amplitudes is already 16GiB.
	MaxQubits = 30

	// DefaultTolerance is the allowed drift of the total outcome probability.
	DefaultTolerance = 1e-6
)

type Config struct {
	// Tolerance for the probability normalization check in MeasureSample.
	Tolerance float64 `mapstructure:"tolerance"`
	// Seed for the sampling source. Zero keeps the process-wide source.
	Seed uint64 `mapstructure:"seed"`
	// Shots is the default number of classical readouts for Statistics.
	Shots int `mapstructure:"shots"`
	// ReadoutMode is the default readout, "quantum" or "classical".
	ReadoutMode string `mapstructure:"readout_mode"`
}

func NewConfig() *Config {
	return &Config{
		Tolerance:   DefaultTolerance,
		Shots:       1024,
		ReadoutMode: string(ReadoutClassical),
	}
}
