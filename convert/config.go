package convert

import (
	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/source"
	"github.com/NethermindEth/bsonbridge/utils"
	"github.com/NethermindEth/bsonbridge/validator"
)

// Config holds the settings shared by conversions. Viper fills it from
// flags and the YAML config file.
type Config struct {
	LogLevel utils.LogLevel `mapstructure:"log-level"`
	Colour   bool           `mapstructure:"colour"`

	// InputFormat overrides the format guessed from each file extension.
	InputFormat        string                   `mapstructure:"input-format" validate:"omitempty,oneof=json jsonc yaml yml cbor"`
	OutputDir          string                   `mapstructure:"output-dir" validate:"required"`
	GUIDRepresentation bsonw.GUIDRepresentation `mapstructure:"guid-representation" validate:"guid_representation"`
	Workers            int                      `mapstructure:"workers" validate:"min=1"`
	Summary            bool                     `mapstructure:"summary"`
	MaxDocumentSize    int                      `mapstructure:"max-document-size" validate:"min=5"`
}

func (c *Config) Validate() error {
	return validator.Validator().Struct(c)
}

// Settings returns the binary writer settings for one output file.
func (c *Config) Settings() bsonw.Settings {
	return bsonw.Settings{
		GUIDRepresentation: c.GUIDRepresentation,
		MaxDocumentSize:    c.MaxDocumentSize,
	}
}

func (c *Config) format(path string) (source.Format, error) {
	if c.InputFormat == "" {
		return source.FormatFromPath(path)
	}
	var f source.Format
	return f, f.Set(c.InputFormat)
}

// RewriteConfig holds the settings of a GUID rewrite.
type RewriteConfig struct {
	LogLevel utils.LogLevel `mapstructure:"log-level"`
	Colour   bool           `mapstructure:"colour"`

	From            bsonw.GUIDRepresentation `mapstructure:"from" validate:"guid_representation"`
	To              bsonw.GUIDRepresentation `mapstructure:"to" validate:"guid_representation"`
	MaxDocumentSize int                      `mapstructure:"max-document-size" validate:"min=5"`
}

func (c *RewriteConfig) Validate() error {
	return validator.Validator().Struct(c)
}
