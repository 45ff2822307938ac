// cmd/common.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/cat"
	"github.com/asterixkit/getafix/schema"
)

// ConfigureLogger sets up the process logger from the global flags
func ConfigureLogger(verbose bool, jsonFormat bool) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// buildDecoder assembles the registry (the editions of the given schema
// files, or the built-in editions when none are given) and a decoder
// configured from the stream profile.
func buildDecoder(schemaFiles []string) (*asterix.Decoder, error) {
	var editions []*schema.Edition
	for _, path := range schemaFiles {
		eds, err := schema.LoadXMLFile(path)
		if err != nil {
			return nil, err
		}
		editions = append(editions, eds...)
	}

	var reg *schema.Registry
	var err error
	if len(editions) > 0 {
		reg, err = schema.NewRegistry(editions...)
	} else {
		reg, err = cat.BuiltinRegistry()
	}
	if err != nil {
		return nil, err
	}

	var opts []asterix.Option
	if ProfilePath != "" {
		profile, err := LoadProfile(ProfilePath)
		if err != nil {
			return nil, err
		}
		opts = profile.Options()
	}

	return asterix.NewDecoder(reg, opts...)
}
