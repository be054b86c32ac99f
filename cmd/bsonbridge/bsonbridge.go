package main

import (
	"fmt"
	"runtime"

	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/convert"
	"github.com/NethermindEth/bsonbridge/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF             = "config"
	logLevelF           = "log-level"
	colourF             = "colour"
	inputFormatF        = "input-format"
	outputDirF          = "output-dir"
	guidRepresentationF = "guid-representation"
	workersF            = "workers"
	summaryF            = "summary"
	maxDocumentSizeF    = "max-document-size"
	fromF               = "from"
	toF                 = "to"

	defaultConfig          = ""
	defaultColour          = true
	defaultInputFormat     = ""
	defaultOutputDir       = "."
	defaultSummary         = false
	defaultMaxDocumentSize = bsonw.DefaultMaxDocumentSize

	configFlagUsage   = "The YAML configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error, fatal."
	colourUsage       = "Uses --colour=false command to disable colourized outputs (ANSI Escape Codes)."
	inputFormatUsage  = "Format of the input files: json, jsonc, yaml or cbor. " +
		"If unset the format is guessed from each file extension."
	outputDirUsage          = "Directory the .bson files are written to."
	guidRepresentationUsage = "Byte layout of GUIDs in the output. Options: standard, csharp-legacy, java-legacy, python-legacy."
	workersUsage            = "Maximum number of files converted at the same time."
	summaryUsage            = "Print a table of the converted files."
	maxDocumentSizeUsage    = "Largest document accepted, in bytes."
	fromUsage               = "Representation legacy (subtype 3) GUIDs in the input are stored with."
	toUsage                 = "Representation GUIDs are written with."
)

func NewCmd() *cobra.Command {
	logLevel := utils.NewLogLevel(utils.INFO)

	rootCmd := &cobra.Command{
		Use:     "bsonbridge",
		Short:   "Converts JSON, JSONC, YAML and CBOR documents to BSON.",
		Version: Version,
	}
	rootCmd.PersistentFlags().String(configF, defaultConfig, configFlagUsage)
	rootCmd.PersistentFlags().Var(logLevel, logLevelF, logLevelFlagUsage)
	rootCmd.PersistentFlags().Bool(colourF, defaultColour, colourUsage)
	rootCmd.PersistentFlags().Int(maxDocumentSizeF, defaultMaxDocumentSize, maxDocumentSizeUsage)

	rootCmd.AddCommand(ConvertCmd(), RewriteCmd())
	return rootCmd
}

func ConvertCmd() *cobra.Command {
	representation := bsonw.Standard

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert input files to BSON",
		Long: `Each input file is converted to <output-dir>/<name>.bson. Files holding several
documents (concatenated JSON, multi-document YAML, CBOR sequences) produce one
BSON document each.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().String(inputFormatF, defaultInputFormat, inputFormatUsage)
	cmd.Flags().String(outputDirF, defaultOutputDir, outputDirUsage)
	cmd.Flags().Var(&representation, guidRepresentationF, guidRepresentationUsage)
	cmd.Flags().Int(workersF, runtime.GOMAXPROCS(0), workersUsage)
	cmd.Flags().Bool(summaryF, defaultSummary, summaryUsage)
	return cmd
}

func RewriteCmd() *cobra.Command {
	from := bsonw.CSharpLegacy
	to := bsonw.Standard

	cmd := &cobra.Command{
		Use:   "rewrite <in.bson> <out.bson>",
		Short: "Rewrite the GUIDs of a BSON file in another representation",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE:  runRewrite,
	}
	cmd.Flags().Var(&from, fromF, fromUsage)
	cmd.Flags().Var(&to, toF, toUsage)
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := new(convert.Config)
	if err := loadConfig(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log, err := utils.NewZapLogger(&cfg.LogLevel, cfg.Colour)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	results, err := convert.Files(cmd.Context(), cfg, args, log)
	if err != nil {
		return err
	}

	if cfg.Summary {
		var documents int
		var size int64
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Input", "Output", "Documents", "Bytes"})
		for _, r := range results {
			table.Append([]string{r.Input, r.Output, fmt.Sprintf("%d", r.Documents), fmt.Sprintf("%d", r.Bytes)})
			documents += r.Documents
			size += r.Bytes
		}
		table.SetFooter([]string{"Total", fmt.Sprintf("%d files", len(results)), fmt.Sprintf("%d", documents), fmt.Sprintf("%d", size)})
		table.Render()
	}
	return nil
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg := new(convert.RewriteConfig)
	if err := loadConfig(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	log, err := utils.NewZapLogger(&cfg.LogLevel, cfg.Colour)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	_, err = convert.Rewrite(cmd.Context(), cfg, args[0], args[1], log)
	return err
}

// loadConfig fills cfg from the config file, if any, overridden by flags.
func loadConfig(cmd *cobra.Command, cfg any) error {
	v := viper.New()

	cfgFile, err := cmd.Flags().GetString(configF)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err = v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Representations and log levels arrive as strings from both sources.
	return v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
}
